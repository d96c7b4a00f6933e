package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

type assistantService interface {
	ClassifyIntent(ctx context.Context, message string, lang domain.Language) (domain.IntentResult, error)
	SuggestDonation(ctx context.Context, message string, lang domain.Language) (domain.DonationSuggestion, error)
	Chat(ctx context.Context, message, pageContext string, lang domain.Language) (string, error)
}

// AssistantHandler serves the model-backed helper endpoints.
type AssistantHandler struct {
	svc assistantService
	log *slog.Logger
}

// NewAssistantHandler creates an AssistantHandler.
func NewAssistantHandler(svc assistantService, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{svc: svc, log: logger.With("handler", "assistant")}
}

// assistantRequest keeps loose types so a non-string message is answered
// with the same 400 as a missing one.
type assistantRequest struct {
	Message  any `json:"message"`
	Context  any `json:"context"`
	Language any `json:"language"`
}

func (req assistantRequest) message() (string, bool) {
	s, ok := req.Message.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

func (req assistantRequest) language() domain.Language {
	s, _ := req.Language.(string)
	return domain.ParseLanguage(s)
}

func (req assistantRequest) pageContext() string {
	s, _ := req.Context.(string)
	return s
}

type intentResponse struct {
	Intent       string  `json:"intent"`
	Confidence   float64 `json:"confidence"`
	Suggestion   string  `json:"suggestion"`
	RedirectPath *string `json:"redirectPath"`
}

type donationResponse struct {
	SuggestedAmount int    `json:"suggestedAmount"`
	Frequency       string `json:"frequency"`
	Reason          string `json:"reason"`
	Message         string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// readMessage decodes the body and enforces a non-empty string message.
func (h *AssistantHandler) readMessage(w http.ResponseWriter, r *http.Request) (assistantRequest, string, bool) {
	var req assistantRequest
	if !decodeBody(w, r, &req) {
		return req, "", false
	}
	msg, ok := req.message()
	if !ok {
		writeError(w, http.StatusBadRequest, msgMessageRequired)
		return req, "", false
	}
	return req, msg, true
}

// AnalyzeIntent handles POST /api/ai/analyze-intent.
func (h *AssistantHandler) AnalyzeIntent(w http.ResponseWriter, r *http.Request) {
	req, msg, ok := h.readMessage(w, r)
	if !ok {
		return
	}

	res, err := h.svc.ClassifyIntent(r.Context(), msg, req.language())
	if err != nil {
		handleError(w, r, h.log, err, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, intentResponse{
		Intent:       string(res.Intent),
		Confidence:   res.Confidence,
		Suggestion:   res.Suggestion,
		RedirectPath: res.RedirectPath,
	})
}

// SuggestDonation handles POST /api/ai/suggest-donation.
func (h *AssistantHandler) SuggestDonation(w http.ResponseWriter, r *http.Request) {
	req, msg, ok := h.readMessage(w, r)
	if !ok {
		return
	}

	res, err := h.svc.SuggestDonation(r.Context(), msg, req.language())
	if err != nil {
		handleError(w, r, h.log, err, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, donationResponse{
		SuggestedAmount: res.SuggestedAmount,
		Frequency:       string(res.Frequency),
		Reason:          res.Reason,
		Message:         res.Message,
	})
}

// Chat handles POST /api/ai/chat.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	req, msg, ok := h.readMessage(w, r)
	if !ok {
		return
	}

	reply, err := h.svc.Chat(r.Context(), msg, req.pageContext(), req.language())
	if err != nil {
		handleError(w, r, h.log, err, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: reply})
}
