package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.AIPerMinute <= 0 {
		return fmt.Errorf("rate_limit.ai_per_minute must be > 0 (got %d)", c.RateLimit.AIPerMinute)
	}

	if c.RateLimit.Enabled && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for storage backend %q", BackendPostgres)
		}
	case BackendDynamoDB:
		if c.DynamoDB.Table == "" {
			return fmt.Errorf("dynamodb.table is required for storage backend %q", BackendDynamoDB)
		}
	default:
		return fmt.Errorf("storage.backend must be one of memory, postgres, dynamodb (got %q)", c.Storage.Backend)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))
	switch l.Provider {
	case ProviderAnthropic, ProviderOpenAI, ProviderNone:
	default:
		return fmt.Errorf("provider must be one of anthropic, openai, none (got %q)", l.Provider)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", l.Timeout)
	}
	if l.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", l.MaxRetries)
	}
	if l.Model == "" {
		l.Model = defaultModel(l.Provider)
	}
	return nil
}

func defaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderAnthropic:
		return "claude-3-5-haiku-latest"
	}
	return ""
}
