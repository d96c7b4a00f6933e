package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// GenerateThankYou writes a personalized thank-you for a stored submission
// in the tone the visitor asked for.
func (s *Service) GenerateThankYou(ctx context.Context, sub *domain.Submission) string {
	year := s.year()

	emotion := sub.Emotion
	if !emotion.IsValid() {
		emotion = domain.EmotionCaring
	}

	prompt := render(thankYouPrompt, map[string]any{
		"year":      year,
		"style":     emotionStyles[emotion],
		"context":   missionContexts[sub.MissionType()],
		"firstName": sub.FirstName,
		"lastName":  sub.LastName,
		"details":   missionDetails(sub),
	})

	text, err := s.llm.Complete(ctx, prompt, domain.CompletionOptions{MaxTokens: thankYouMaxTokens})
	if err == nil {
		if text = strings.Trim(strings.TrimSpace(text), `"`); text != "" {
			return text
		}
		err = fmt.Errorf("thank-you: empty reply")
	}

	s.logFallback(ctx, "generate_thank_you", err)
	return render(thankYouFallbacks[sub.MissionType()], map[string]any{
		"firstName": sub.FirstName,
		"year":      year,
	})
}

// missionDetails summarizes the mission-specific fields for the prompt.
func missionDetails(sub *domain.Submission) string {
	var b strings.Builder
	switch d := sub.Details.(type) {
	case domain.DonationDetails:
		fmt.Fprintf(&b, "Montant du don: %d€, Fréquence: %s.", d.Amount, d.Frequency)
		if d.CustomMessage != nil {
			fmt.Fprintf(&b, " Message personnel: %q", *d.CustomMessage)
		}
	case domain.VolunteerDetails:
		fmt.Fprintf(&b, "Compétences proposées: %s. Disponibilité: %s.", strings.Join(d.Skills, ", "), d.Availability)
		if d.Motivation != nil {
			fmt.Fprintf(&b, " Motivation: %q", *d.Motivation)
		}
	case domain.ContactDetails:
		fmt.Fprintf(&b, "Sujet du message: %q.", d.Subject)
	case domain.InformationDetails:
		fmt.Fprintf(&b, "Type de demande: %s.", d.RequestType)
		if d.SpecificQuestion != nil {
			fmt.Fprintf(&b, " Question spécifique: %q", *d.SpecificQuestion)
		}
	}
	return b.String()
}
