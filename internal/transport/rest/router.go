package rest

import (
	"net/http"

	"github.com/heartmarshall/nexus-missions/internal/transport/middleware"
)

// Routes groups the handlers mounted by NewRouter. AILimit wraps only the
// model-backed endpoints; nil disables it.
type Routes struct {
	Health      *HealthHandler
	Submissions *SubmissionHandler
	Assistant   *AssistantHandler
	AILimit     middleware.Middleware
}

// NewRouter mounts every API endpoint on a method-aware mux.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", rt.Health.Health)
	mux.HandleFunc("GET /ready", rt.Health.Ready)

	mux.HandleFunc("POST /api/submissions", rt.Submissions.Create)
	mux.HandleFunc("GET /api/submissions", rt.Submissions.List)
	mux.HandleFunc("GET /api/submissions/{id}", rt.Submissions.Get)

	limit := rt.AILimit
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}
	mux.Handle("POST /api/ai/analyze-intent", limit(http.HandlerFunc(rt.Assistant.AnalyzeIntent)))
	mux.Handle("POST /api/ai/suggest-donation", limit(http.HandlerFunc(rt.Assistant.SuggestDonation)))
	mux.Handle("POST /api/ai/chat", limit(http.HandlerFunc(rt.Assistant.Chat)))

	return mux
}
