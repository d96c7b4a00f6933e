package assistant

import (
	"context"
	"sync"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// completerMock is a moq-style test double for completer.
type completerMock struct {
	CompleteFunc func(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error)

	mu    sync.Mutex
	calls []completerMockCall
}

type completerMockCall struct {
	Prompt string
	Opts   domain.CompletionOptions
}

func (m *completerMock) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	if m.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but Complete was just called")
	}
	m.mu.Lock()
	m.calls = append(m.calls, completerMockCall{Prompt: prompt, Opts: opts})
	m.mu.Unlock()
	return m.CompleteFunc(ctx, prompt, opts)
}

func (m *completerMock) CompleteCalls() []completerMockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]completerMockCall(nil), m.calls...)
}

func replying(text string) *completerMock {
	return &completerMock{CompleteFunc: func(context.Context, string, domain.CompletionOptions) (string, error) {
		return text, nil
	}}
}

func failing(err error) *completerMock {
	return &completerMock{CompleteFunc: func(context.Context, string, domain.CompletionOptions) (string, error) {
		return "", err
	}}
}
