package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/nexus-missions/internal/domain"
	"github.com/heartmarshall/nexus-missions/internal/service/submission"
)

var _ submissionService = &submissionServiceMock{}

type submissionServiceMock struct {
	CreateFunc func(ctx context.Context, input submission.CreateInput) (*domain.Submission, error)
	GetFunc    func(ctx context.Context, rawID string) (*domain.Submission, error)
	ListFunc   func(ctx context.Context) ([]domain.Submission, error)

	calls struct {
		Create []struct {
			Input submission.CreateInput
		}
		Get []struct {
			RawID string
		}
	}
	lockCreate sync.RWMutex
	lockGet    sync.RWMutex
}

func (mock *submissionServiceMock) Create(ctx context.Context, input submission.CreateInput) (*domain.Submission, error) {
	if mock.CreateFunc == nil {
		panic("submissionServiceMock.CreateFunc: method is nil but submissionService.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Input submission.CreateInput }{Input: input})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *submissionServiceMock) CreateCalls() []struct{ Input submission.CreateInput } {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *submissionServiceMock) Get(ctx context.Context, rawID string) (*domain.Submission, error) {
	if mock.GetFunc == nil {
		panic("submissionServiceMock.GetFunc: method is nil but submissionService.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ RawID string }{RawID: rawID})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, rawID)
}

func (mock *submissionServiceMock) GetCalls() []struct{ RawID string } {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *submissionServiceMock) List(ctx context.Context) ([]domain.Submission, error) {
	if mock.ListFunc == nil {
		panic("submissionServiceMock.ListFunc: method is nil but submissionService.List was just called")
	}
	return mock.ListFunc(ctx)
}

var _ assistantService = &assistantServiceMock{}

type assistantServiceMock struct {
	ClassifyIntentFunc  func(ctx context.Context, message string, lang domain.Language) (domain.IntentResult, error)
	SuggestDonationFunc func(ctx context.Context, message string, lang domain.Language) (domain.DonationSuggestion, error)
	ChatFunc            func(ctx context.Context, message, pageContext string, lang domain.Language) (string, error)

	calls struct {
		Chat []struct {
			Message     string
			PageContext string
			Lang        domain.Language
		}
	}
	lockChat sync.RWMutex
}

func (mock *assistantServiceMock) ClassifyIntent(ctx context.Context, message string, lang domain.Language) (domain.IntentResult, error) {
	if mock.ClassifyIntentFunc == nil {
		panic("assistantServiceMock.ClassifyIntentFunc: method is nil but assistantService.ClassifyIntent was just called")
	}
	return mock.ClassifyIntentFunc(ctx, message, lang)
}

func (mock *assistantServiceMock) SuggestDonation(ctx context.Context, message string, lang domain.Language) (domain.DonationSuggestion, error) {
	if mock.SuggestDonationFunc == nil {
		panic("assistantServiceMock.SuggestDonationFunc: method is nil but assistantService.SuggestDonation was just called")
	}
	return mock.SuggestDonationFunc(ctx, message, lang)
}

func (mock *assistantServiceMock) Chat(ctx context.Context, message, pageContext string, lang domain.Language) (string, error) {
	if mock.ChatFunc == nil {
		panic("assistantServiceMock.ChatFunc: method is nil but assistantService.Chat was just called")
	}
	mock.lockChat.Lock()
	mock.calls.Chat = append(mock.calls.Chat, struct {
		Message     string
		PageContext string
		Lang        domain.Language
	}{Message: message, PageContext: pageContext, Lang: lang})
	mock.lockChat.Unlock()
	return mock.ChatFunc(ctx, message, pageContext, lang)
}

func (mock *assistantServiceMock) ChatCalls() []struct {
	Message     string
	PageContext string
	Lang        domain.Language
} {
	mock.lockChat.RLock()
	defer mock.lockChat.RUnlock()
	return mock.calls.Chat
}
