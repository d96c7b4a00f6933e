package submission

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

var _ submissionStore = &submissionStoreMock{}

type submissionStoreMock struct {
	CreateFunc             func(ctx context.Context, sub *domain.Submission) error
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	ListFunc               func(ctx context.Context) ([]domain.Submission, error)
	SetThankYouMessageFunc func(ctx context.Context, id uuid.UUID, message string) error

	calls struct {
		Create []struct {
			Sub *domain.Submission
		}
		GetByID []struct {
			ID uuid.UUID
		}
		List               []struct{}
		SetThankYouMessage []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Message string
		}
	}
	lockCreate             sync.RWMutex
	lockGetByID            sync.RWMutex
	lockList               sync.RWMutex
	lockSetThankYouMessage sync.RWMutex
}

func (mock *submissionStoreMock) Create(ctx context.Context, sub *domain.Submission) error {
	if mock.CreateFunc == nil {
		panic("submissionStoreMock.CreateFunc: method is nil but submissionStore.Create was just called")
	}
	callInfo := struct{ Sub *domain.Submission }{Sub: sub}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, sub)
}

func (mock *submissionStoreMock) CreateCalls() []struct{ Sub *domain.Submission } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *submissionStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	if mock.GetByIDFunc == nil {
		panic("submissionStoreMock.GetByIDFunc: method is nil but submissionStore.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *submissionStoreMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *submissionStoreMock) List(ctx context.Context) ([]domain.Submission, error) {
	if mock.ListFunc == nil {
		panic("submissionStoreMock.ListFunc: method is nil but submissionStore.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *submissionStoreMock) SetThankYouMessage(ctx context.Context, id uuid.UUID, message string) error {
	if mock.SetThankYouMessageFunc == nil {
		panic("submissionStoreMock.SetThankYouMessageFunc: method is nil but submissionStore.SetThankYouMessage was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Message string
	}{Ctx: ctx, ID: id, Message: message}
	mock.lockSetThankYouMessage.Lock()
	mock.calls.SetThankYouMessage = append(mock.calls.SetThankYouMessage, callInfo)
	mock.lockSetThankYouMessage.Unlock()
	return mock.SetThankYouMessageFunc(ctx, id, message)
}

func (mock *submissionStoreMock) SetThankYouMessageCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Message string
} {
	mock.lockSetThankYouMessage.RLock()
	calls := mock.calls.SetThankYouMessage
	mock.lockSetThankYouMessage.RUnlock()
	return calls
}

var _ assistant = &assistantMock{}

type assistantMock struct {
	ClassifyContactFunc  func(ctx context.Context, message, subject string) domain.ContactTriage
	GenerateThankYouFunc func(ctx context.Context, sub *domain.Submission) string

	calls struct {
		ClassifyContact []struct {
			Message string
			Subject string
		}
		GenerateThankYou []struct {
			Sub *domain.Submission
		}
	}
	lockClassifyContact  sync.RWMutex
	lockGenerateThankYou sync.RWMutex
}

func (mock *assistantMock) ClassifyContact(ctx context.Context, message, subject string) domain.ContactTriage {
	if mock.ClassifyContactFunc == nil {
		panic("assistantMock.ClassifyContactFunc: method is nil but assistant.ClassifyContact was just called")
	}
	callInfo := struct {
		Message string
		Subject string
	}{Message: message, Subject: subject}
	mock.lockClassifyContact.Lock()
	mock.calls.ClassifyContact = append(mock.calls.ClassifyContact, callInfo)
	mock.lockClassifyContact.Unlock()
	return mock.ClassifyContactFunc(ctx, message, subject)
}

func (mock *assistantMock) ClassifyContactCalls() []struct {
	Message string
	Subject string
} {
	mock.lockClassifyContact.RLock()
	calls := mock.calls.ClassifyContact
	mock.lockClassifyContact.RUnlock()
	return calls
}

func (mock *assistantMock) GenerateThankYou(ctx context.Context, sub *domain.Submission) string {
	if mock.GenerateThankYouFunc == nil {
		panic("assistantMock.GenerateThankYouFunc: method is nil but assistant.GenerateThankYou was just called")
	}
	callInfo := struct{ Sub *domain.Submission }{Sub: sub}
	mock.lockGenerateThankYou.Lock()
	mock.calls.GenerateThankYou = append(mock.calls.GenerateThankYou, callInfo)
	mock.lockGenerateThankYou.Unlock()
	return mock.GenerateThankYouFunc(ctx, sub)
}

func (mock *assistantMock) GenerateThankYouCalls() []struct{ Sub *domain.Submission } {
	mock.lockGenerateThankYou.RLock()
	calls := mock.calls.GenerateThankYou
	mock.lockGenerateThankYou.RUnlock()
	return calls
}
