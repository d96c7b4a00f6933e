package rest

import (
	"context"
	"net/http"
	"time"
)

// pinger is implemented by store backends that hold a connection.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store   pinger
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. store may be nil for backends
// without a connection to probe.
func NewHealthHandler(store pinger, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version, now: time.Now}
}

// HealthResponse is the JSON response for /api/health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Health is the liveness probe used by the client. Always returns 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC(),
	})
}

// Ready pings the store with latency measurement: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: map[string]CompStatus{},
	}

	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		start := time.Now()
		err := h.store.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			resp.Status = "down"
			resp.Components["store"] = CompStatus{Status: "down"}
		} else {
			resp.Components["store"] = CompStatus{Status: "ok", Latency: latency.String()}
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	resp.Timestamp = h.now().UTC()
	writeJSON(w, status, resp)
}
