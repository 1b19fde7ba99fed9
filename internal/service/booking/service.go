// Package booking implements the session booking lifecycle between students
// and active mentors.
package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/config"
	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// bookingRepo defines the booking repository interface needed by the booking service.
type bookingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus, meetingLink *string, expectedVersion int) (*domain.Booking, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, limit, offset int) ([]*domain.Booking, error)
	ListByMentor(ctx context.Context, mentorID uuid.UUID, limit, offset int) ([]*domain.Booking, error)
}

// mentorRepo defines the mentor record repository interface needed by the booking service.
type mentorRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MentorRecord, error)
	GetByActorID(ctx context.Context, actorID uuid.UUID) (*domain.MentorRecord, error)
}

// notifier delivers a message to an actor's inbox.
type notifier interface {
	Notify(ctx context.Context, recipientID uuid.UUID, message string, link *string) error
}

// Service implements booking lifecycle operations.
type Service struct {
	log      *slog.Logger
	bookings bookingRepo
	mentors  mentorRepo
	inbox    notifier
	cfg      config.BookingConfig
	now      func() time.Time
}

// NewService creates a new booking service instance.
func NewService(logger *slog.Logger, bookings bookingRepo, mentors mentorRepo, inbox notifier, cfg config.BookingConfig) *Service {
	return &Service{
		log:      logger.With("service", "booking"),
		bookings: bookings,
		mentors:  mentors,
		inbox:    inbox,
		cfg:      cfg,
		now:      time.Now,
	}
}

// notify is fire-and-forget: a transition's write is the source of truth and
// a failed notification must never look like a failed transition.
func (s *Service) notify(ctx context.Context, recipientID uuid.UUID, message string, link *string) {
	if err := s.inbox.Notify(ctx, recipientID, message, link); err != nil {
		s.log.WarnContext(ctx, "notification delivery failed",
			slog.String("recipient_id", recipientID.String()),
			slog.String("error", err.Error()))
	}
}

func bookingLink(id uuid.UUID) *string {
	link := "/bookings/" + id.String()
	return &link
}
