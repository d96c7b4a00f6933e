package assistant

import (
	"context"
	"errors"
	"strings"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// Chat answers a free-form message. pageContext describes where the
// visitor is and may be empty.
func (s *Service) Chat(ctx context.Context, message, pageContext string, lang domain.Language) (string, error) {
	msg, err := requireMessage(message)
	if err != nil {
		return "", err
	}

	ctxLine := ""
	if c := strings.TrimSpace(pageContext); c != "" {
		ctxLine = "\nContext: " + c + "\n"
	}

	prompt := render(chatPrompt, map[string]any{
		"year":     s.year(),
		"context":  ctxLine,
		"language": string(lang),
		"message":  msg,
	})

	reply, err := s.llm.Complete(ctx, prompt, domain.CompletionOptions{MaxTokens: chatMaxTokens})
	switch {
	case errors.Is(err, domain.ErrModelUnavailable):
		s.logFallback(ctx, "chat", err)
		return chatOffline.in(lang), nil
	case err != nil:
		s.logFallback(ctx, "chat", err)
		return chatError.in(lang), nil
	}

	if reply = strings.TrimSpace(reply); reply == "" {
		return chatEmpty.in(lang), nil
	}
	return reply, nil
}
