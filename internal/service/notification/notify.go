package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// Notify appends a message to the recipient's inbox. Other services call
// this after a state transition commits; a failure here must not be treated
// as a failure of the transition itself.
func (s *Service) Notify(ctx context.Context, recipientID uuid.UUID, message string, link *string) error {
	if recipientID == uuid.Nil {
		return domain.NewValidationError("recipient_id", "required")
	}
	if message == "" {
		return domain.NewValidationError("message", "required")
	}

	created, err := s.notifications.Create(ctx, &domain.Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Message:     message,
		Link:        link,
	})
	if err != nil {
		return fmt.Errorf("notification.Notify: %w", err)
	}

	s.log.DebugContext(ctx, "notification delivered",
		slog.String("notification_id", created.ID.String()),
		slog.String("recipient_id", recipientID.String()))

	return nil
}
