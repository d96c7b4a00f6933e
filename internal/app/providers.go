package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/nexus-missions/internal/adapter/dynamo"
	"github.com/heartmarshall/nexus-missions/internal/adapter/llm"
	"github.com/heartmarshall/nexus-missions/internal/adapter/llm/anthropic"
	"github.com/heartmarshall/nexus-missions/internal/adapter/llm/openai"
	"github.com/heartmarshall/nexus-missions/internal/adapter/memory"
	"github.com/heartmarshall/nexus-missions/internal/adapter/postgres"
	pgsubmission "github.com/heartmarshall/nexus-missions/internal/adapter/postgres/submission"
	"github.com/heartmarshall/nexus-missions/internal/config"
	"github.com/heartmarshall/nexus-missions/internal/domain"
	"github.com/heartmarshall/nexus-missions/migrations"
)

type completer interface {
	Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error)
}

type submissionStore interface {
	Create(ctx context.Context, sub *domain.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	List(ctx context.Context) ([]domain.Submission, error)
	SetThankYouMessage(ctx context.Context, id uuid.UUID, message string) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// store is the opened submission backend. ping is nil when the backend has
// no connection to probe.
type store struct {
	submissions submissionStore
	ping        pinger
	close       func()
}

// newCompleter builds the configured provider behind the timeout and retry
// guard. Without a provider every model call reports ErrModelUnavailable and
// the assistant answers with its fallbacks.
func newCompleter(cfg config.LLMConfig, log *slog.Logger) completer {
	if !cfg.Enabled() {
		log.Warn("llm disabled, assistant will use fallbacks", slog.String("provider", cfg.Provider))
		return llm.Unavailable{}
	}

	var provider completer
	switch cfg.Provider {
	case config.ProviderOpenAI:
		provider = openai.New(cfg.APIKey, cfg.Model, cfg.BaseURL)
	default:
		provider = anthropic.New(cfg.APIKey, cfg.Model, cfg.BaseURL)
	}
	return llm.NewGuard(provider, cfg.Timeout, cfg.MaxRetries, log)
}

// openStore connects the configured backend. Postgres runs the embedded
// migrations first when auto_migrate is set.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*store, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, log); err != nil {
				return nil, err
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		log.Info("using postgres submission store")
		return &store{submissions: pgsubmission.New(pool), ping: pool, close: pool.Close}, nil

	case config.BackendDynamoDB:
		client, err := dynamo.NewClient(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		log.Info("using dynamodb submission store", slog.String("table", cfg.DynamoDB.Table))
		return &store{submissions: dynamo.NewSubmissionStore(client, cfg.DynamoDB.Table), close: func() {}}, nil

	case config.BackendMemory, "":
		log.Info("using in-memory submission store")
		return &store{submissions: memory.NewSubmissionStore(), close: func() {}}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
