// Package approval implements the administrative review gate that turns
// pending mentor records into active or rejected ones.
package approval

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// mentorRepo defines the mentor record repository interface needed by the approval service.
type mentorRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MentorRecord, error)
	ListPending(ctx context.Context) ([]*domain.MentorRecord, []uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApprovalStatus, attrs domain.AttributeBag, expectedVersion int) (*domain.MentorRecord, error)
}

// notifier delivers a message to an actor's inbox.
type notifier interface {
	Notify(ctx context.Context, recipientID uuid.UUID, message string, link *string) error
}

// Service implements approval gate operations.
type Service struct {
	log     *slog.Logger
	mentors mentorRepo
	inbox   notifier
}

// NewService creates a new approval service instance.
func NewService(logger *slog.Logger, mentors mentorRepo, inbox notifier) *Service {
	return &Service{
		log:     logger.With("service", "approval"),
		mentors: mentors,
		inbox:   inbox,
	}
}

// notify is fire-and-forget: the status write is the source of truth and a
// failed notification must never look like a failed decision.
func (s *Service) notify(ctx context.Context, recipientID uuid.UUID, message string, link *string) {
	if err := s.inbox.Notify(ctx, recipientID, message, link); err != nil {
		s.log.WarnContext(ctx, "notification delivery failed",
			slog.String("recipient_id", recipientID.String()),
			slog.String("error", err.Error()))
	}
}
