package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/internal/service/mentorprofile"
)

// mentorProfileService defines the minimal interface needed by MentorHandler.
type mentorProfileService interface {
	Get(ctx context.Context) (*mentorprofile.Profile, error)
	UpdateProfile(ctx context.Context, input mentorprofile.UpdateProfileInput) (*domain.MentorRecord, error)
	AddSkill(ctx context.Context, skill string) error
	RemoveSkill(ctx context.Context, skill string) error
	Directory(ctx context.Context, filter mentorprofile.DirectoryFilter) ([]*mentorprofile.Profile, error)
}

// MentorHandler serves the mentor profile and public directory endpoints.
type MentorHandler struct {
	svc mentorProfileService
	log *slog.Logger
}

// NewMentorHandler creates a MentorHandler.
func NewMentorHandler(svc mentorProfileService, logger *slog.Logger) *MentorHandler {
	return &MentorHandler{svc: svc, log: logger.With("handler", "mentor")}
}

type updateProfileRequest struct {
	HourlyRate       *int    `json:"hourlyRate,omitempty"`
	YearsExperience  *int    `json:"yearsExperience,omitempty"`
	OrganizationName *string `json:"organizationName,omitempty"`
}

type skillRequest struct {
	Skill string `json:"skill"`
}

// GetProfile handles GET /mentors/me.
func (h *MentorHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Get(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMentorResponse(profile.Record, profile.Skills))
}

// UpdateProfile handles PATCH /mentors/me.
func (h *MentorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.UpdateProfile(r.Context(), mentorprofile.UpdateProfileInput{
		HourlyRate:       req.HourlyRate,
		YearsExperience:  req.YearsExperience,
		OrganizationName: req.OrganizationName,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMentorResponse(rec, nil))
}

// AddSkill handles POST /mentors/me/skills.
func (h *MentorHandler) AddSkill(w http.ResponseWriter, r *http.Request) {
	var req skillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.AddSkill(r.Context(), req.Skill); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RemoveSkill handles DELETE /mentors/me/skills/{skill}.
func (h *MentorHandler) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	skill := r.PathValue("skill")
	if skill == "" {
		writeError(w, http.StatusBadRequest, "invalid skill")
		return
	}

	if err := h.svc.RemoveSkill(r.Context(), skill); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Directory handles GET /mentors. Public, no authentication required.
func (h *MentorHandler) Directory(w http.ResponseWriter, r *http.Request) {
	filter := mentorprofile.DirectoryFilter{}
	filter.Limit, filter.Offset = pagination(r)

	if v := r.URL.Query().Get("skill"); v != "" {
		filter.Skill = &v
	}
	if v := r.URL.Query().Get("maxRate"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid maxRate")
			return
		}
		filter.MaxRate = &n
	}

	profiles, err := h.svc.Directory(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	items := make([]mentorResponse, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, toMentorResponse(p.Record, p.Skills))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
