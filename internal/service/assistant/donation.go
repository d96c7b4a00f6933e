package assistant

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// Bounds of an advised donation amount, model answers included.
const (
	MinSuggestedAmount     = 5
	MaxSuggestedAmount     = 100
	defaultSuggestedAmount = 10
)

// SuggestDonation advises an amount and a frequency from a free-text message.
func (s *Service) SuggestDonation(ctx context.Context, message string, lang domain.Language) (domain.DonationSuggestion, error) {
	msg, err := requireMessage(message)
	if err != nil {
		return domain.DonationSuggestion{}, err
	}

	year := s.year()
	prompt := render(donationPrompt, map[string]any{
		"year":     year,
		"message":  msg,
		"language": string(lang),
	})

	raw, err := s.llm.Complete(ctx, prompt, domain.CompletionOptions{JSON: true, MaxTokens: donationMaxTokens})
	if err == nil {
		var res domain.DonationSuggestion
		if res, err = parseDonation(raw, lang, year); err == nil {
			return res, nil
		}
	}

	s.logFallback(ctx, "suggest_donation", err)
	return s.donationFallback(msg, lang, year), nil
}

func parseDonation(raw string, lang domain.Language, year string) (domain.DonationSuggestion, error) {
	if !gjson.Valid(raw) {
		return domain.DonationSuggestion{}, fmt.Errorf("donation: invalid json")
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return domain.DonationSuggestion{}, fmt.Errorf("donation: not an object")
	}

	amount := defaultSuggestedAmount
	if v, ok := number(doc.Get("suggestedAmount")); ok && v > 0 {
		amount = clampInt(int(math.Round(v)), MinSuggestedAmount, MaxSuggestedAmount)
	}

	freq := domain.Frequency(strings.ToLower(strings.TrimSpace(doc.Get("frequency").String())))
	if !freq.IsValid() {
		freq = domain.FrequencyOnce
	}

	vars := map[string]any{"year": year}
	reason := strings.TrimSpace(doc.Get("reason").String())
	if reason == "" {
		reason = render(defaultDonationReason.in(lang), vars)
	}
	text := strings.TrimSpace(doc.Get("message").String())
	if text == "" {
		text = defaultDonationMessage.in(lang)
	}

	return domain.DonationSuggestion{
		SuggestedAmount: amount,
		Frequency:       freq,
		Reason:          reason,
		Message:         text,
	}, nil
}

func (s *Service) donationFallback(message string, lang domain.Language, year string) domain.DonationSuggestion {
	text := domain.FoldText(message)
	kw := s.currentKeywords()

	rule := defaultDonationRule
	for _, r := range donationRules {
		if containsAny(text, kw.Donation[r.bucket]) {
			rule = r
			break
		}
	}

	vars := map[string]any{"year": year}
	return domain.DonationSuggestion{
		SuggestedAmount: rule.amount,
		Frequency:       rule.frequency,
		Reason:          render(rule.reason.in(lang), vars),
		Message:         rule.message.in(lang),
	}
}
