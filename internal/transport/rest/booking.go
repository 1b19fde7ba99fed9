package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/internal/service/booking"
)

// bookingService defines the minimal interface needed by BookingHandler.
type bookingService interface {
	Request(ctx context.Context, input booking.RequestInput) (*domain.Booking, error)
	Respond(ctx context.Context, input booking.RespondInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	Complete(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Booking, error)
}

// BookingHandler serves the session booking REST endpoints.
type BookingHandler struct {
	svc bookingService
	log *slog.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc bookingService, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, log: logger.With("handler", "booking")}
}

type requestBookingRequest struct {
	MentorID    string     `json:"mentorId"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Date        string     `json:"date,omitempty"`
	Time        string     `json:"time,omitempty"`
}

type respondBookingRequest struct {
	Decision    string  `json:"decision"`
	MeetingLink *string `json:"meetingLink,omitempty"`
}

// Request handles POST /bookings.
func (h *BookingHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req requestBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mentorID, err := uuid.Parse(req.MentorID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid mentorId")
		return
	}

	b, err := h.svc.Request(r.Context(), booking.RequestInput{
		MentorID:    mentorID,
		ScheduledAt: req.ScheduledAt,
		Date:        req.Date,
		TimeLabel:   req.Time,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookingResponse(b))
}

// Respond handles POST /bookings/{id}/respond.
func (h *BookingHandler) Respond(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req respondBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.svc.Respond(r.Context(), booking.RespondInput{
		BookingID:   bookingID,
		Decision:    req.Decision,
		MeetingLink: req.MeetingLink,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookingResponse(b))
}

// Cancel handles POST /bookings/{id}/cancel.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	b, err := h.svc.Cancel(r.Context(), bookingID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookingResponse(b))
}

// Complete handles POST /bookings/{id}/complete.
func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	b, err := h.svc.Complete(r.Context(), bookingID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookingResponse(b))
}

// List handles GET /bookings.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	bookings, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	items := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, toBookingResponse(b))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// pagination reads limit/offset query params, zero when absent or malformed.
// Services clamp to their own ceilings.
func pagination(r *http.Request) (limit, offset int) {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	return limit, offset
}
