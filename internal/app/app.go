package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/nexus-missions/internal/adapter/keywordfile"
	"github.com/heartmarshall/nexus-missions/internal/config"
	"github.com/heartmarshall/nexus-missions/internal/service/assistant"
	"github.com/heartmarshall/nexus-missions/internal/service/submission"
	"github.com/heartmarshall/nexus-missions/internal/transport/middleware"
)

// Run is the application entry point. It loads configuration, opens the
// submission store, builds the services and serves HTTP until ctx is
// cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Backend),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	assistantSvc := assistant.NewService(logger, newCompleter(cfg.LLM, logger))
	submissionSvc := submission.NewService(logger, st.submissions, assistantSvc)

	g, gctx := errgroup.WithContext(ctx)

	if path := cfg.Assistant.KeywordsPath; path != "" {
		watcher := keywordfile.NewWatcher(path, assistantSvc.ReloadKeywords, logger)
		if err := watcher.Load(); err != nil {
			logger.Warn("keyword file not applied, using defaults", slog.String("error", err.Error()))
		}
		g.Go(func() error { return watchKeywords(gctx, watcher, logger) })
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.AIPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr: net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler: newHTTPHandler(handlerDeps{
			cfg:         cfg,
			log:         logger,
			submissions: submissionSvc,
			assistant:   assistantSvc,
			ping:        st.ping,
			limiter:     limiter,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// watchKeywords runs the keyword watcher. The keyword file is optional, so a
// watcher that cannot start only disables hot reload.
func watchKeywords(ctx context.Context, w *keywordfile.Watcher, log *slog.Logger) error {
	if err := w.Run(ctx); err != nil {
		log.Warn("keyword hot reload disabled, using current tables", slog.String("error", err.Error()))
	}
	return nil
}
