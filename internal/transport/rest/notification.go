package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/service/notification"
)

// notificationService defines the minimal interface needed by NotificationHandler.
type notificationService interface {
	List(ctx context.Context, limit, offset int) (*notification.ListResult, error)
	MarkRead(ctx context.Context, notificationID uuid.UUID) error
}

// NotificationHandler serves the inbox REST endpoints.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

type notificationListResponse struct {
	Items       []notificationResponse `json:"items"`
	Total       int                    `json:"total"`
	UnreadCount int                    `json:"unreadCount"`
}

// List handles GET /notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	result, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := notificationListResponse{
		Items:       make([]notificationResponse, 0, len(result.Items)),
		Total:       result.Total,
		UnreadCount: result.UnreadCount,
	}
	for _, n := range result.Items {
		resp.Items = append(resp.Items, toNotificationResponse(n))
	}

	writeJSON(w, http.StatusOK, resp)
}

// MarkRead handles POST /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.MarkRead(r.Context(), notificationID); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
