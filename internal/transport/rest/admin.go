package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/internal/service/approval"
)

// approvalService defines the minimal interface needed by AdminHandler.
type approvalService interface {
	ListPending(ctx context.Context) ([]*domain.MentorRecord, error)
	Decide(ctx context.Context, input approval.DecideInput) (*domain.MentorRecord, error)
}

// AdminHandler serves the mentor review queue endpoints. The approval
// service enforces the admin role on every call.
type AdminHandler struct {
	svc approvalService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc approvalService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type decideRequest struct {
	Decision string `json:"decision"`
	Override bool   `json:"override"`
}

// ListPending handles GET /admin/mentors/pending.
func (h *AdminHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListPending(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	items := make([]mentorResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, toMentorResponse(rec, nil))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Decide handles POST /admin/mentors/{id}/decision.
func (h *AdminHandler) Decide(w http.ResponseWriter, r *http.Request) {
	mentorID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Decide(r.Context(), approval.DecideInput{
		MentorID: mentorID,
		Decision: req.Decision,
		Override: req.Override,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMentorResponse(rec, nil))
}
