package booking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/pkg/ctxutil"
)

// Respond is the booked mentor's verdict on a pending request: confirm
// (optionally attaching a meeting link) or decline. The write is a
// compare-and-swap on the booking's version, so of two concurrent responders
// exactly one wins.
func (s *Service) Respond(ctx context.Context, input RespondInput) (*domain.Booking, error) {
	callerID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("booking.Respond: %w", domain.ErrUnauthorized)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("booking.Respond get booking: %w", err)
	}

	rec, err := s.mentors.GetByID(ctx, b.MentorID)
	if err != nil {
		return nil, fmt.Errorf("booking.Respond get mentor: %w", err)
	}
	if rec.ActorID != callerID {
		return nil, fmt.Errorf("booking.Respond: only the booked mentor may respond: %w", domain.ErrForbidden)
	}

	next := domain.BookingStatus(input.Decision)
	if b.Status != domain.BookingPending || !b.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("booking %s is %s: %w", b.ID, b.Status, domain.ErrConflict)
	}

	var link *string
	if next == domain.BookingConfirmed {
		link = input.MeetingLink
	}

	updated, err := s.bookings.UpdateStatus(ctx, b.ID, next, link, b.Version)
	if err != nil {
		return nil, fmt.Errorf("booking.Respond update: %w", err)
	}

	s.log.InfoContext(ctx, "booking responded",
		slog.String("booking_id", b.ID.String()),
		slog.String("decision", input.Decision))

	message := "Your session request was declined."
	if next == domain.BookingConfirmed {
		message = "Your session on " + updated.ScheduledAt.Format("Jan 2, 3:04 PM") + " is confirmed."
	}
	s.notify(ctx, updated.StudentID, message, bookingLink(updated.ID))

	return updated, nil
}
