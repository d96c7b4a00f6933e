// Package memory provides an in-process submission store. Data lives for
// the lifetime of the process and is never evicted.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// SubmissionStore keeps submissions in a map guarded by a RWMutex.
type SubmissionStore struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*domain.Submission
	order []uuid.UUID // insertion order
	now   func() time.Time
}

// NewSubmissionStore creates an empty store.
func NewSubmissionStore() *SubmissionStore {
	return &SubmissionStore{
		byID: make(map[uuid.UUID]*domain.Submission),
		now:  time.Now,
	}
}

// Create assigns id and created_at and stores a copy of sub.
func (s *SubmissionStore) Create(_ context.Context, sub *domain.Submission) error {
	if sub.Details == nil {
		return fmt.Errorf("submission: missing details: %w", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub.ID = uuid.New()
	sub.CreatedAt = s.now().UTC()

	s.byID[sub.ID] = clone(sub)
	s.order = append(s.order, sub.ID)
	return nil
}

// GetByID returns a copy of the stored submission.
func (s *SubmissionStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
	}
	return clone(sub), nil
}

// List returns all submissions, newest first. Submissions created within
// the same clock tick keep reverse insertion order.
func (s *SubmissionStore) List(_ context.Context) ([]domain.Submission, error) {
	s.mu.RLock()
	out := make([]domain.Submission, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, *clone(s.byID[s.order[i]]))
	}
	s.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b domain.Submission) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

// SetThankYouMessage stores the thank-you message once.
func (s *SubmissionStore) SetThankYouMessage(_ context.Context, id uuid.UUID, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
	}
	if sub.ThankYouMessage != nil {
		return fmt.Errorf("submission %s: thank-you message: %w", id, domain.ErrConflict)
	}
	sub.ThankYouMessage = &message
	return nil
}

// clone copies sub so callers never share memory with the store.
func clone(sub *domain.Submission) *domain.Submission {
	c := *sub
	c.Message = clonePtr(sub.Message)
	c.ThankYouMessage = clonePtr(sub.ThankYouMessage)

	switch d := sub.Details.(type) {
	case domain.DonationDetails:
		d.CustomMessage = clonePtr(d.CustomMessage)
		c.Details = d
	case domain.VolunteerDetails:
		d.Skills = slices.Clone(d.Skills)
		d.Motivation = clonePtr(d.Motivation)
		c.Details = d
	case domain.InformationDetails:
		d.SpecificQuestion = clonePtr(d.SpecificQuestion)
		c.Details = d
	}
	return &c
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
