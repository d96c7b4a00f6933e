package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

func TestChat_ModelReply(t *testing.T) {
	t.Parallel()

	mock := replying("  Bienvenue dans le Nexus !  ")
	svc := newTestService(t, mock)

	got, err := svc.Chat(context.Background(), "Salut", "page don", domain.LanguageFR)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Bienvenue dans le Nexus !" {
		t.Errorf("got %q", got)
	}

	calls := mock.CompleteCalls()
	if len(calls) != 1 {
		t.Fatalf("Complete calls: got %d, want 1", len(calls))
	}
	if calls[0].Opts.JSON || calls[0].Opts.MaxTokens != chatMaxTokens {
		t.Errorf("opts: got %+v", calls[0].Opts)
	}
	if !strings.Contains(calls[0].Prompt, "Context: page don") {
		t.Error("prompt should embed the page context")
	}
}

func TestChat_NoContextLine(t *testing.T) {
	t.Parallel()

	mock := replying("ok")
	svc := newTestService(t, mock)

	if _, err := svc.Chat(context.Background(), "Hi", "  ", domain.LanguageEN); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(mock.CompleteCalls()[0].Prompt, "Context:") {
		t.Error("blank context should not be rendered")
	}
}

func TestChat_Fallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mock *completerMock
		lang domain.Language
		want string
	}{
		{name: "offline fr", mock: failing(domain.ErrModelUnavailable), lang: domain.LanguageFR, want: chatOffline.fr},
		{name: "offline en", mock: failing(domain.ErrModelUnavailable), lang: domain.LanguageEN, want: chatOffline.en},
		{name: "error fr", mock: failing(errors.New("502")), lang: domain.LanguageFR, want: chatError.fr},
		{name: "error en", mock: failing(errors.New("502")), lang: domain.LanguageEN, want: chatError.en},
		{name: "empty reply", mock: replying(""), lang: domain.LanguageEN, want: "Tell me how I can help you!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestService(t, tt.mock)

			got, err := svc.Chat(context.Background(), "hello", "", tt.lang)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChat_EmptyMessage(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, replying("ok"))
	if _, err := svc.Chat(context.Background(), "", "ctx", domain.LanguageFR); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}
