package notification

import (
	"context"
	"fmt"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/pkg/ctxutil"
)

// ListResult is one inbox page plus counters for badge rendering.
type ListResult struct {
	Items       []*domain.Notification
	Total       int
	UnreadCount int
}

// List returns the caller's inbox, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) (*ListResult, error) {
	callerID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("notification.List: %w", domain.ErrUnauthorized)
	}

	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, total, err := s.notifications.ListByRecipient(ctx, callerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}
	unread, err := s.notifications.CountUnread(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("notification.List count unread: %w", err)
	}

	return &ListResult{Items: items, Total: total, UnreadCount: unread}, nil
}
