package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/nexus-missions/internal/domain"
	"github.com/heartmarshall/nexus-missions/internal/service/submission"
)

const msgSubmissionNotFound = "Submission not found"

type submissionService interface {
	Create(ctx context.Context, input submission.CreateInput) (*domain.Submission, error)
	Get(ctx context.Context, rawID string) (*domain.Submission, error)
	List(ctx context.Context) ([]domain.Submission, error)
}

// SubmissionHandler serves the mission form endpoints.
type SubmissionHandler struct {
	svc submissionService
	log *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(svc submissionService, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, log: logger.With("handler", "submission")}
}

type createSubmissionRequest struct {
	MissionType       string   `json:"missionType"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Email             string   `json:"email"`
	Message           *string  `json:"message"`
	EmotionPreference string   `json:"emotionPreference"`
	Amount            *float64 `json:"amount"`
	Frequency         string   `json:"frequency"`
	CustomMessage     *string  `json:"customMessage"`
	Skills            []string `json:"skills"`
	Availability      string   `json:"availability"`
	Motivation        *string  `json:"motivation"`
	Subject           string   `json:"subject"`
	RequestType       string   `json:"requestType"`
	SpecificQuestion  *string  `json:"specificQuestion"`
}

func (req createSubmissionRequest) toInput() submission.CreateInput {
	return submission.CreateInput{
		MissionType:      req.MissionType,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Message:          req.Message,
		Emotion:          req.EmotionPreference,
		Amount:           req.Amount,
		Frequency:        req.Frequency,
		CustomMessage:    req.CustomMessage,
		Skills:           req.Skills,
		Availability:     req.Availability,
		Motivation:       req.Motivation,
		Subject:          req.Subject,
		RequestType:      req.RequestType,
		SpecificQuestion: req.SpecificQuestion,
	}
}

type submissionResponse struct {
	ID                string    `json:"id"`
	MissionType       string    `json:"missionType"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	AIThankYouMessage *string   `json:"aiThankYouMessage"`
	CreatedAt         time.Time `json:"createdAt"`
}

type submissionListItem struct {
	ID          string    `json:"id"`
	MissionType string    `json:"missionType"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Create handles POST /api/submissions.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSubmissionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sub, err := h.svc.Create(r.Context(), req.toInput())
	if err != nil {
		handleError(w, r, h.log, err, msgSubmissionNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, toSubmissionResponse(sub))
}

// Get handles GET /api/submissions/{id}.
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sub, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err, msgSubmissionNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// List handles GET /api/submissions.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, msgSubmissionNotFound)
		return
	}

	items := make([]submissionListItem, len(subs))
	for i := range subs {
		s := &subs[i]
		items[i] = submissionListItem{
			ID:          s.ID.String(),
			MissionType: string(s.MissionType()),
			FirstName:   s.FirstName,
			LastName:    s.LastName,
			Email:       s.Email,
			CreatedAt:   s.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, items)
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	return submissionResponse{
		ID:                s.ID.String(),
		MissionType:       string(s.MissionType()),
		FirstName:         s.FirstName,
		LastName:          s.LastName,
		AIThankYouMessage: s.ThankYouMessage,
		CreatedAt:         s.CreatedAt,
	}
}
