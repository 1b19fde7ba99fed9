package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/pkg/ctxutil"
)

// Request creates a pending booking for the calling student against an
// active mentor. The scheduled time must be strictly in the future and the
// mentor must be accepting bookings; neither failure creates a row.
func (s *Service) Request(ctx context.Context, input RequestInput) (*domain.Booking, error) {
	studentID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("booking.Request: %w", domain.ErrUnauthorized)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	scheduledAt, err := input.resolveInstant()
	if err != nil {
		return nil, err
	}
	if !scheduledAt.After(s.now().Add(s.cfg.MinLeadTime)) {
		return nil, domain.NewValidationError("scheduled_at", "must be in the future")
	}

	rec, err := s.mentors.GetByID(ctx, input.MentorID)
	if err != nil {
		return nil, fmt.Errorf("booking.Request get mentor: %w", err)
	}
	if rec.ApprovalStatus != domain.ApprovalActive {
		return nil, domain.NewValidationError("mentor_id", "mentor is not accepting bookings")
	}

	created, err := s.bookings.Create(ctx, &domain.Booking{
		ID:          uuid.New(),
		StudentID:   studentID,
		MentorID:    rec.ID,
		ScheduledAt: scheduledAt.UTC(),
		Status:      domain.BookingPending,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("slot %s already requested for this mentor: %w",
				scheduledAt.UTC().Format("2006-01-02 15:04"), domain.ErrConflict)
		}
		return nil, fmt.Errorf("booking.Request create: %w", err)
	}

	s.log.InfoContext(ctx, "booking requested",
		slog.String("booking_id", created.ID.String()),
		slog.String("student_id", studentID.String()),
		slog.String("mentor_id", rec.ID.String()))

	s.notify(ctx, rec.ActorID,
		"You have a new session request for "+created.ScheduledAt.Format("Jan 2, 3:04 PM")+".",
		bookingLink(created.ID))

	return created, nil
}
