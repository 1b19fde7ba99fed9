// Package notification implements the in-app inbox: appending messages on
// state transitions and letting actors read and acknowledge them.
package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// maxListLimit caps a single inbox page.
const maxListLimit = 100

// notificationRepo defines the notification repository interface needed by
// the notification service.
type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*domain.Notification, int, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error
}

// Service implements notification operations.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
}

// NewService creates a new notification service instance.
func NewService(logger *slog.Logger, notifications notificationRepo) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
	}
}
