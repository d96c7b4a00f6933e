// Package submission accepts mission forms, stores them and attaches a
// generated thank-you message.
package submission

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

type submissionStore interface {
	Create(ctx context.Context, sub *domain.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	List(ctx context.Context) ([]domain.Submission, error)
	SetThankYouMessage(ctx context.Context, id uuid.UUID, message string) error
}

type assistant interface {
	ClassifyContact(ctx context.Context, message, subject string) domain.ContactTriage
	GenerateThankYou(ctx context.Context, sub *domain.Submission) string
}

// Service provides submission operations.
type Service struct {
	store     submissionStore
	assistant assistant
	log       *slog.Logger
}

// NewService creates a new submission service.
func NewService(
	log *slog.Logger,
	store submissionStore,
	assistant assistant,
) *Service {
	return &Service{
		store:     store,
		assistant: assistant,
		log:       log.With("service", "submission"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
