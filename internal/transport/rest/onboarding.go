package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/service/onboarding"
)

// onboardingService defines the minimal interface needed by OnboardingHandler.
type onboardingService interface {
	StartSession(ctx context.Context, input onboarding.StartSessionInput) (*onboarding.SessionView, error)
	SubmitStep(ctx context.Context, input onboarding.SubmitStepInput) (*onboarding.SessionView, error)
	GoBack(ctx context.Context, sessionID uuid.UUID) (*onboarding.SessionView, error)
	Finalize(ctx context.Context, sessionID uuid.UUID) (*onboarding.FinalizeResult, error)
}

// OnboardingHandler serves the registration wizard REST endpoints.
type OnboardingHandler struct {
	svc onboardingService
	log *slog.Logger
}

// NewOnboardingHandler creates an OnboardingHandler.
func NewOnboardingHandler(svc onboardingService, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{svc: svc, log: logger.With("handler", "onboarding")}
}

type startSessionRequest struct {
	Kind string `json:"kind"`
}

type submitStepRequest struct {
	Values map[string]string `json:"values"`
}

type sessionResponse struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Branch    string            `json:"branch,omitempty"`
	Step      int               `json:"step"`
	StepName  string            `json:"stepName"`
	StepCount int               `json:"stepCount"`
	StepNames []string          `json:"stepNames"`
	Fields    map[string]string `json:"fields"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// Start handles POST /onboarding/sessions.
func (h *OnboardingHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.svc.StartSession(r.Context(), onboarding.StartSessionInput{Kind: req.Kind})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(view))
}

// SubmitStep handles POST /onboarding/sessions/{id}/step.
func (h *OnboardingHandler) SubmitStep(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req submitStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.svc.SubmitStep(r.Context(), onboarding.SubmitStepInput{
		SessionID: sessionID,
		Values:    req.Values,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(view))
}

// GoBack handles POST /onboarding/sessions/{id}/back.
func (h *OnboardingHandler) GoBack(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	view, err := h.svc.GoBack(r.Context(), sessionID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(view))
}

// Finalize handles POST /onboarding/sessions/{id}/finalize.
func (h *OnboardingHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.svc.Finalize(r.Context(), sessionID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := struct {
		AccessToken  string          `json:"accessToken"`
		RefreshToken string          `json:"refreshToken"`
		Actor        actorResponse   `json:"actor"`
		Mentor       *mentorResponse `json:"mentor,omitempty"`
	}{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		Actor:        toActorResponse(result.Actor),
	}
	if result.MentorRecord != nil {
		mentor := toMentorResponse(result.MentorRecord, nil)
		resp.Mentor = &mentor
	}

	writeJSON(w, http.StatusCreated, resp)
}

func toSessionResponse(view *onboarding.SessionView) sessionResponse {
	return sessionResponse{
		ID:        view.ID.String(),
		Kind:      view.Kind.String(),
		Branch:    view.Branch.String(),
		Step:      view.Step,
		StepName:  view.StepName,
		StepCount: view.StepCount,
		StepNames: view.StepNames,
		Fields:    view.Fields,
		ExpiresAt: view.ExpiresAt,
	}
}

// pathUUID parses a UUID path value, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
