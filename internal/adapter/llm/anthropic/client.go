// Package anthropic implements the completion provider on top of the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/nexus-missions/internal/adapter/llm"
	"github.com/heartmarshall/nexus-missions/internal/domain"
)

const defaultMaxTokens = 256

// Client sends single-turn prompts to Claude.
type Client struct {
	api   anthropic.Client
	model string
}

// New creates a Client. baseURL may be empty. SDK retries are disabled;
// llm.Guard owns the retry policy.
func New(apiKey, model, baseURL string) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Client{
		api:   anthropic.NewClient(opts...),
		model: model,
	}
}

// Complete returns the text of the first reply. In JSON mode the prompt is
// suffixed with a JSON-only instruction and the object is cut out of the reply.
func (c *Client) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	if opts.JSON {
		prompt += llm.JSONInstruction
	}

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &llm.StatusError{Provider: "anthropic", Code: apiErr.StatusCode, Body: apiErr.Error()}
		}
		return "", fmt.Errorf("anthropic: messages.new: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("anthropic: %w", llm.ErrEmptyResponse)
	}

	if !opts.JSON {
		return text, nil
	}
	obj, err := llm.ExtractJSON(text)
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}
	return obj, nil
}
