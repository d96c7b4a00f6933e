package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// ClassifyContact pre-fills triage metadata for a contact request.
func (s *Service) ClassifyContact(ctx context.Context, message, subject string) domain.ContactTriage {
	subject = strings.TrimSpace(subject)

	prompt := render(contactPrompt, map[string]any{
		"subject": subject,
		"message": strings.TrimSpace(message),
	})

	raw, err := s.llm.Complete(ctx, prompt, domain.CompletionOptions{JSON: true, MaxTokens: contactMaxTokens})
	if err == nil {
		var res domain.ContactTriage
		if res, err = parseContact(raw, subject); err == nil {
			return res
		}
	}

	s.logFallback(ctx, "classify_contact", err)
	return domain.ContactTriage{
		Category: domain.CategoryOther,
		Priority: domain.PriorityMedium,
		Summary:  summaryOrDefault(subject),
	}
}

func parseContact(raw, subject string) (domain.ContactTriage, error) {
	if !gjson.Valid(raw) {
		return domain.ContactTriage{}, fmt.Errorf("contact: invalid json")
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return domain.ContactTriage{}, fmt.Errorf("contact: not an object")
	}

	category := domain.ContactCategory(strings.ToLower(strings.TrimSpace(doc.Get("category").String())))
	if !category.IsValid() {
		category = domain.CategoryOther
	}
	priority := domain.ContactPriority(strings.ToLower(strings.TrimSpace(doc.Get("priority").String())))
	if !priority.IsValid() {
		priority = domain.PriorityMedium
	}
	summary := strings.TrimSpace(doc.Get("summary").String())
	if summary == "" {
		summary = summaryOrDefault(subject)
	}

	return domain.ContactTriage{Category: category, Priority: priority, Summary: summary}, nil
}

func summaryOrDefault(subject string) string {
	if subject != "" {
		return subject
	}
	return defaultContactSummary
}
