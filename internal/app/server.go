package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/nexus-missions/internal/config"
	"github.com/heartmarshall/nexus-missions/internal/service/assistant"
	"github.com/heartmarshall/nexus-missions/internal/service/submission"
	"github.com/heartmarshall/nexus-missions/internal/transport/middleware"
	"github.com/heartmarshall/nexus-missions/internal/transport/rest"
)

type handlerDeps struct {
	cfg         *config.Config
	log         *slog.Logger
	submissions *submission.Service
	assistant   *assistant.Service
	ping        pinger
	limiter     *middleware.RateLimiter
}

// newHTTPHandler mounts the API and wraps it in the cross-cutting middleware.
func newHTTPHandler(d handlerDeps) http.Handler {
	routes := rest.Routes{
		Health:      rest.NewHealthHandler(d.ping, BuildVersion()),
		Submissions: rest.NewSubmissionHandler(d.submissions, d.log),
		Assistant:   rest.NewAssistantHandler(d.assistant, d.log),
	}
	if d.limiter != nil {
		routes.AILimit = d.limiter.Limit()
	}

	return middleware.Chain(
		middleware.Recovery(d.log),
		middleware.RequestID(),
		middleware.Logger(d.log),
		middleware.CORS(d.cfg.CORS),
		middleware.BodyLimit(d.cfg.Server.MaxBodyBytes),
	)(rest.NewRouter(routes))
}
