package domain

import "errors"

// ErrModelUnavailable is returned by a completion provider that is not
// configured. Callers fall back to deterministic rules.
var ErrModelUnavailable = errors.New("language model unavailable")

// CompletionOptions tunes a single completion request.
type CompletionOptions struct {
	// JSON asks the provider for a single JSON object as the reply.
	JSON      bool
	MaxTokens int
}
