package assistant

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// ClassifyIntent decides which mission a free-text message is about.
// Only an empty message is an error.
func (s *Service) ClassifyIntent(ctx context.Context, message string, lang domain.Language) (domain.IntentResult, error) {
	msg, err := requireMessage(message)
	if err != nil {
		return domain.IntentResult{}, err
	}

	prompt := render(intentPrompt, map[string]any{
		"year":     s.year(),
		"message":  msg,
		"language": string(lang),
	})

	raw, err := s.llm.Complete(ctx, prompt, domain.CompletionOptions{JSON: true, MaxTokens: intentMaxTokens})
	if err == nil {
		var res domain.IntentResult
		if res, err = parseIntent(raw, lang); err == nil {
			return res, nil
		}
	}

	s.logFallback(ctx, "classify_intent", err)
	return s.intentFallback(msg, lang), nil
}

func parseIntent(raw string, lang domain.Language) (domain.IntentResult, error) {
	if !gjson.Valid(raw) {
		return domain.IntentResult{}, fmt.Errorf("intent: invalid json")
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return domain.IntentResult{}, fmt.Errorf("intent: not an object")
	}

	intent := domain.Intent(strings.ToLower(strings.TrimSpace(doc.Get("intent").String())))
	if !intent.IsValid() {
		intent = domain.IntentUnclear
	}

	confidence := 0.5
	if v, ok := number(doc.Get("confidence")); ok {
		confidence = clampFloat(v, 0, 1)
	}

	suggestion := strings.TrimSpace(doc.Get("suggestion").String())
	if suggestion == "" {
		suggestion = defaultIntentSuggestion.in(lang)
	}

	return domain.IntentResult{
		Intent:       intent,
		Confidence:   confidence,
		Suggestion:   suggestion,
		RedirectPath: intent.RedirectPath(),
	}, nil
}

func (s *Service) intentFallback(message string, lang domain.Language) domain.IntentResult {
	text := domain.FoldText(message)
	kw := s.currentKeywords()

	rule := unclearRule
	for _, r := range intentRules {
		if containsAny(text, kw.Intents[r.intent]) {
			rule = r
			break
		}
	}

	return domain.IntentResult{
		Intent:       rule.intent,
		Confidence:   rule.confidence,
		Suggestion:   rule.suggestion.in(lang),
		RedirectPath: rule.intent.RedirectPath(),
	}
}

// number reads a finite JSON number, or a string holding one.
func number(r gjson.Result) (float64, bool) {
	var v float64
	switch r.Type {
	case gjson.Number:
		v = r.Float()
	case gjson.String:
		var err error
		if v, err = strconv.ParseFloat(strings.TrimSpace(r.Str), 64); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
