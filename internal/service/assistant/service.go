// Package assistant routes free text to missions, advises donation amounts,
// triages contact requests and writes thank-you messages. Every operation
// tries the language model first and falls back to deterministic rules, so
// none of them fails once its input is valid.
package assistant

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/valyala/fasttemplate"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// Token budgets per operation.
const (
	intentMaxTokens   = 256
	donationMaxTokens = 256
	thankYouMaxTokens = 256
	contactMaxTokens  = 128
	chatMaxTokens     = 150
)

type completer interface {
	Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error)
}

// Service provides the assistant operations.
type Service struct {
	llm      completer
	keywords atomic.Pointer[Keywords]
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new assistant service with the default keyword tables.
func NewService(log *slog.Logger, llm completer) *Service {
	s := &Service{
		llm: llm,
		log: log.With("service", "assistant"),
		now: time.Now,
	}
	kw := DefaultKeywords()
	s.keywords.Store(&kw)
	return s
}

// ReloadKeywords replaces the fallback keyword tables with the override
// document raw. On error the current tables stay in place.
func (s *Service) ReloadKeywords(raw []byte) error {
	kw, err := ParseKeywords(raw)
	if err != nil {
		return err
	}
	s.keywords.Store(&kw)
	s.log.Info("keyword tables reloaded",
		slog.Int("intents", len(kw.Intents)),
		slog.Int("donation_buckets", len(kw.Donation)),
	)
	return nil
}

func (s *Service) currentKeywords() *Keywords {
	return s.keywords.Load()
}

func (s *Service) year() string {
	return strconv.Itoa(s.now().Year())
}

// render fills {{tag}} placeholders; unknown tags are left untouched.
func render(tpl string, vars map[string]any) string {
	return fasttemplate.ExecuteStringStd(tpl, "{{", "}}", vars)
}

// logFallback records why a rule-based answer replaced the model.
func (s *Service) logFallback(ctx context.Context, op string, err error) {
	if errors.Is(err, domain.ErrModelUnavailable) {
		s.log.DebugContext(ctx, "model unavailable, using fallback", slog.String("op", op))
		return
	}
	s.log.WarnContext(ctx, "model call failed, using fallback",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
}

func requireMessage(message string) (string, error) {
	m := strings.TrimSpace(message)
	if m == "" {
		return "", domain.NewValidationError("message", "required")
	}
	return m, nil
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
