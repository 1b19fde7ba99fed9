package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/pkg/ctxutil"
)

// MarkRead acknowledges one of the caller's notifications. The write is
// scoped to the caller, so pointing at someone else's notification reads as
// not found rather than leaking its existence.
func (s *Service) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
	callerID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return fmt.Errorf("notification.MarkRead: %w", domain.ErrUnauthorized)
	}
	if notificationID == uuid.Nil {
		return domain.NewValidationError("notification_id", "required")
	}

	if err := s.notifications.MarkRead(ctx, callerID, notificationID); err != nil {
		return fmt.Errorf("notification.MarkRead: %w", err)
	}
	return nil
}
