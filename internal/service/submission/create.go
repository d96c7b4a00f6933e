package submission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// persistTimeout bounds the thank-you write once the request context is
// detached.
const persistTimeout = 10 * time.Second

// Create validates and stores a submission, then attaches its thank-you
// message. Contact requests are triaged before they are stored.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sub := input.toSubmission()

	if d, ok := sub.Details.(domain.ContactDetails); ok {
		triage := s.assistant.ClassifyContact(ctx, deref(sub.Message), d.Subject)
		d.Category = triage.Category
		d.Priority = triage.Priority
		d.Summary = triage.Summary
		sub.Details = d
	}

	if err := s.store.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	// The row exists from here on, so it must get its message even if the
	// caller goes away. Model calls are bounded by the llm guard.
	detached := context.WithoutCancel(ctx)
	thanks := s.assistant.GenerateThankYou(detached, sub)

	persistCtx, cancel := context.WithTimeout(detached, persistTimeout)
	defer cancel()
	if err := s.store.SetThankYouMessage(persistCtx, sub.ID, thanks); err != nil {
		return nil, fmt.Errorf("set thank-you message: %w", err)
	}
	sub.ThankYouMessage = &thanks

	s.log.InfoContext(ctx, "submission created",
		slog.String("submission_id", sub.ID.String()),
		slog.String("mission_type", string(sub.MissionType())),
		slog.String("emotion", string(sub.Emotion)),
	)

	return sub, nil
}
