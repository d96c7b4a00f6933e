// Package llm holds provider-independent pieces of the completion layer:
// the retry/timeout guard, the unavailable stub and response helpers.
// Concrete providers live in sub-packages.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// ErrNoJSON is returned when a reply holds no JSON object.
var ErrNoJSON = errors.New("no JSON object found in response")

// ErrEmptyResponse is returned when a provider replies without text.
var ErrEmptyResponse = errors.New("empty response")

// StatusError is a non-2xx provider response.
type StatusError struct {
	Provider string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.Code, e.Body)
}

// Retryable reports whether repeating the request can succeed.
func (e *StatusError) Retryable() bool {
	switch {
	case e.Code == http.StatusRequestTimeout, e.Code == http.StatusTooManyRequests:
		return true
	case e.Code >= 500:
		return true
	}
	return false
}

// Unavailable is the provider used when no model is configured.
type Unavailable struct{}

// Complete always fails with domain.ErrModelUnavailable.
func (Unavailable) Complete(context.Context, string, domain.CompletionOptions) (string, error) {
	return "", domain.ErrModelUnavailable
}

// ExtractJSON returns the text between the first '{' and the last '}'.
func ExtractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", ErrNoJSON
	}
	return s[start : end+1], nil
}

// JSONInstruction is appended to prompts for providers without a native JSON mode.
const JSONInstruction = "\n\nOutput ONLY a valid JSON object, no markdown, no explanations."
