package approval

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/pkg/ctxutil"
)

// ListPending returns the review queue, oldest submission first. Records
// whose attribute bag cannot be parsed are excluded and warn-logged — a
// broken row must never take the whole queue down.
func (s *Service) ListPending(ctx context.Context) ([]*domain.MentorRecord, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("approval.ListPending: %w", domain.ErrForbidden)
	}

	records, malformed, err := s.mentors.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("approval.ListPending: %w", err)
	}

	for _, id := range malformed {
		s.log.WarnContext(ctx, "mentor record excluded from review queue: malformed attribute bag",
			slog.String("mentor_id", id.String()))
	}

	return records, nil
}
