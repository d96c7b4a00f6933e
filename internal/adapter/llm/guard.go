package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

type completer interface {
	Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error)
}

// Guard bounds every call to the wrapped provider with a timeout and
// retries transient failures with exponential backoff.
type Guard struct {
	next       completer
	timeout    time.Duration
	maxRetries int
	interval   time.Duration
	log        *slog.Logger
}

// NewGuard wraps next. maxRetries counts attempts after the first one.
func NewGuard(next completer, timeout time.Duration, maxRetries int, log *slog.Logger) *Guard {
	return &Guard{
		next:       next,
		timeout:    timeout,
		maxRetries: maxRetries,
		interval:   250 * time.Millisecond,
		log:        log.With("component", "llm_guard"),
	}
}

// Complete calls the wrapped provider.
func (g *Guard) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	var out string
	attempt := 0

	op := func() error {
		attempt++
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		text, err := g.next.Complete(callCtx, prompt, opts)
		if err != nil {
			if ctx.Err() != nil || !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = text
		return nil
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = g.interval
	eb.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(g.maxRetries)), ctx)

	notify := func(err error, wait time.Duration) {
		g.log.WarnContext(ctx, "completion failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()),
		)
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return "", fmt.Errorf("complete (attempts %d): %w", attempt, err)
	}
	return out, nil
}

func retryable(err error) bool {
	if errors.Is(err, domain.ErrModelUnavailable) || errors.Is(err, context.Canceled) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Retryable()
	}
	return true
}
