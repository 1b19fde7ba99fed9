package booking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/pkg/ctxutil"
)

// Complete marks a confirmed booking done once its scheduled time has
// passed. The booked mentor or an admin may invoke it; invoking it early is
// an error, never a silent state change.
func (s *Service) Complete(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	callerID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("booking.Complete: %w", domain.ErrUnauthorized)
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking.Complete get booking: %w", err)
	}

	rec, err := s.mentors.GetByID(ctx, b.MentorID)
	if err != nil {
		return nil, fmt.Errorf("booking.Complete get mentor: %w", err)
	}
	if rec.ActorID != callerID && !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("booking.Complete: %w", domain.ErrForbidden)
	}

	if b.Status != domain.BookingConfirmed {
		return nil, fmt.Errorf("booking %s is %s: %w", b.ID, b.Status, domain.ErrConflict)
	}
	if !b.CanComplete(s.now()) {
		return nil, domain.NewValidationError("scheduled_at", "session has not taken place yet")
	}

	updated, err := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingCompleted, nil, b.Version)
	if err != nil {
		return nil, fmt.Errorf("booking.Complete update: %w", err)
	}

	s.log.InfoContext(ctx, "booking completed",
		slog.String("booking_id", b.ID.String()))

	s.notify(ctx, updated.StudentID,
		"Your session on "+updated.ScheduledAt.Format("Jan 2, 3:04 PM")+" is complete.",
		bookingLink(updated.ID))

	return updated, nil
}
