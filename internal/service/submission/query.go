package submission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// Get returns a submission by its textual id. A malformed id is reported as
// not found.
func (s *Service) Get(ctx context.Context, rawID string) (*domain.Submission, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("submission %q: %w", rawID, domain.ErrNotFound)
	}

	sub, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return sub, nil
}

// List returns every submission, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Submission, error) {
	subs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return subs, nil
}
