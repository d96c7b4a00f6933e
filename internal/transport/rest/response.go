package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/nexus-missions/internal/domain"
	"github.com/heartmarshall/nexus-missions/pkg/ctxutil"
)

const (
	msgInternal        = "Internal server error"
	msgValidation      = "Validation error"
	msgInvalidBody     = "invalid request body"
	msgBodyTooLarge    = "Request body too large"
	msgMessageRequired = "Message is required"
)

type errorResponse struct {
	Error   string              `json:"error"`
	Details string              `json:"details,omitempty"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeBody reads a JSON request body and answers the client itself when it
// cannot be decoded. It reports whether the handler should continue.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
	case errors.Is(err, io.EOF):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgValidation, Details: "request body is empty"})
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgValidation, Details: msgInvalidBody})
	}
	return false
}

// handleError maps service errors to HTTP responses. Unknown errors are
// logged and hidden behind a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, notFound string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   msgValidation,
			Details: ve.Details(),
			Fields:  ve.Errors,
		})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgValidation, Details: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}
