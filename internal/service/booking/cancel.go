package booking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/pkg/ctxutil"
)

// Cancel withdraws a confirmed booking. Either party may cancel; the
// counterpart is notified. Pending requests are declined by the mentor via
// Respond, not cancelled here.
func (s *Service) Cancel(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	callerID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("booking.Cancel: %w", domain.ErrUnauthorized)
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking.Cancel get booking: %w", err)
	}

	rec, err := s.mentors.GetByID(ctx, b.MentorID)
	if err != nil {
		return nil, fmt.Errorf("booking.Cancel get mentor: %w", err)
	}

	isStudent := b.StudentID == callerID
	isMentor := rec.ActorID == callerID
	if !isStudent && !isMentor {
		return nil, fmt.Errorf("booking.Cancel: not a party to this booking: %w", domain.ErrForbidden)
	}

	if b.Status != domain.BookingConfirmed {
		return nil, fmt.Errorf("booking %s is %s: %w", b.ID, b.Status, domain.ErrConflict)
	}

	updated, err := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingCancelled, nil, b.Version)
	if err != nil {
		return nil, fmt.Errorf("booking.Cancel update: %w", err)
	}

	s.log.InfoContext(ctx, "booking cancelled",
		slog.String("booking_id", b.ID.String()),
		slog.Bool("by_student", isStudent))

	counterpart := updated.StudentID
	if isStudent {
		counterpart = rec.ActorID
	}
	s.notify(ctx, counterpart,
		"The session on "+updated.ScheduledAt.Format("Jan 2, 3:04 PM")+" was cancelled.",
		bookingLink(updated.ID))

	return updated, nil
}
