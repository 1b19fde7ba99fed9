package booking

import (
	"context"
	"fmt"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/pkg/ctxutil"
)

// List returns the caller's bookings, soonest first. Students see the
// bookings they requested; mentors see the bookings against their record.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*domain.Booking, error) {
	callerID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("booking.List: %w", domain.ErrUnauthorized)
	}

	if limit <= 0 || limit > s.cfg.ListLimit {
		limit = s.cfg.ListLimit
	}
	if offset < 0 {
		offset = 0
	}

	if ctxutil.RoleFromCtx(ctx) == domain.ActorRoleMentor.String() {
		rec, err := s.mentors.GetByActorID(ctx, callerID)
		if err != nil {
			return nil, fmt.Errorf("booking.List get mentor: %w", err)
		}
		bookings, err := s.bookings.ListByMentor(ctx, rec.ID, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("booking.List by mentor: %w", err)
		}
		return bookings, nil
	}

	bookings, err := s.bookings.ListByStudent(ctx, callerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("booking.List by student: %w", err)
	}
	return bookings, nil
}
