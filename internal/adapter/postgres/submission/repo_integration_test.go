//go:build integration

package submission_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/heartmarshall/nexus-missions/internal/adapter/postgres/submission"
	"github.com/heartmarshall/nexus-missions/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/nexus-missions/internal/domain"
)

func strPtr(s string) *string { return &s }

func newRepo(t *testing.T) *submission.Repo {
	t.Helper()
	return submission.New(testhelper.SetupTestDB(t))
}

func TestRepo_RoundTrip(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	subs := []*domain.Submission{
		{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Emotion: domain.EmotionEpic,
			Details: domain.DonationDetails{Amount: 42, Frequency: domain.FrequencyYearly, CustomMessage: strPtr("Go Nexus")}},
		{FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", Emotion: domain.EmotionCaring,
			Details: domain.VolunteerDetails{Skills: []string{"go", "ops"}, Availability: "weekends"}},
		{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Emotion: domain.EmotionFunny,
			Message: strPtr("Le formulaire plante à l'envoi"),
			Details: domain.ContactDetails{Subject: "Bug formulaire", Category: domain.CategoryTechnical, Priority: domain.PriorityHigh, Summary: "Formulaire en panne"}},
		{FirstName: "Linus", LastName: "Torvalds", Email: "linus@example.com", Emotion: domain.EmotionCaring,
			Details: domain.InformationDetails{RequestType: "statuts", SpecificQuestion: strPtr("Où trouver les statuts ?")}},
	}

	for _, sub := range subs {
		if err := repo.Create(ctx, sub); err != nil {
			t.Fatalf("Create %s: %v", sub.MissionType(), err)
		}

		got, err := repo.GetByID(ctx, sub.ID)
		if err != nil {
			t.Fatalf("GetByID %s: %v", sub.MissionType(), err)
		}
		if got.MissionType() != sub.MissionType() || got.Email != sub.Email || !got.CreatedAt.Equal(sub.CreatedAt) {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, sub)
		}
		if got.ThankYouMessage != nil {
			t.Errorf("thank-you should start empty")
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Fatalf("List not newest first at %d", i)
		}
	}
}

func TestRepo_SetThankYouMessage_OnlyOnce(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	sub := &domain.Submission{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Emotion: domain.EmotionCaring,
		Details: domain.DonationDetails{Amount: 5, Frequency: domain.FrequencyOnce}}
	if err := repo.Create(ctx, sub); err != nil {
		t.Fatalf("Create: %v", err)
	}

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.SetThankYouMessage(ctx, sub.ID, "Merci !")
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			if !errors.Is(err, domain.ErrConflict) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 {
		t.Fatalf("succeeded = %d, want exactly 1", succeeded)
	}
}
