//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/nexus-missions/internal/adapter/postgres/submission"
	"github.com/heartmarshall/nexus-missions/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/nexus-missions/internal/config"
	"github.com/heartmarshall/nexus-missions/internal/domain"
	"github.com/heartmarshall/nexus-missions/internal/service/assistant"
	submissionsvc "github.com/heartmarshall/nexus-missions/internal/service/submission"
	"github.com/heartmarshall/nexus-missions/internal/transport/middleware"
	"github.com/heartmarshall/nexus-missions/internal/transport/rest"
)

// scriptedModel answers JSON prompts with a fixed contact triage and plain
// prompts with a fixed thank-you line.
type scriptedModel struct{}

func (scriptedModel) Complete(_ context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	if opts.JSON {
		return `{"category":"technique","priority":"haute","summary":"Formulaire en panne"}`, nil
	}
	if strings.Contains(prompt, "Bonjour Axolotl") {
		return "Bienvenue dans le Nexus !", nil
	}
	return `"Merci, héros du Nexus !"`, nil
}

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full HTTP stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	assistantSvc := assistant.NewService(logger, scriptedModel{})
	submissionSvc := submissionsvc.NewService(logger, submission.New(pool), assistantSvc)

	limiter := middleware.NewRateLimiter(600, 50, time.Minute)
	t.Cleanup(limiter.Stop)

	mux := rest.NewRouter(rest.Routes{
		Health:      rest.NewHealthHandler(pool, "test-version"),
		Submissions: rest.NewSubmissionHandler(submissionSvc, logger),
		Assistant:   rest.NewAssistantHandler(assistantSvc, logger),
		AILimit:     limiter.Limit(),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         86400,
		}),
		middleware.BodyLimit(1<<16),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// postJSON sends a JSON POST request and returns status + decoded body.
func (ts *testServer) postJSON(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	resp, err := ts.Client.Post(ts.URL+path, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}

// getJSON sends a GET request and decodes the body into out.
func (ts *testServer) getJSON(t *testing.T, path string, out any) int {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode
}

func uniqueEmail(prefix string) string {
	return prefix + "-" + time.Now().Format("150405.000000000") + "@example.com"
}
