// Package mentorprofile implements mentor self-service profile management
// and the public mentor directory.
package mentorprofile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/config"
	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// directoryListLimit caps a single directory page.
const directoryListLimit = 50

// mentorRepo defines the mentor record repository interface needed by the
// profile service.
type mentorRepo interface {
	GetByActorID(ctx context.Context, actorID uuid.UUID) (*domain.MentorRecord, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, rate, years *int, orgName *string, attrs domain.AttributeBag, expectedVersion int) (*domain.MentorRecord, error)
	ListActive(ctx context.Context, skill *string, maxRate *int, limit, offset int) ([]*domain.MentorRecord, error)
}

// expertiseRepo defines the expertise tag repository interface needed by the
// profile service.
type expertiseRepo interface {
	Upsert(ctx context.Context, mentorID uuid.UUID, skill string) error
	Delete(ctx context.Context, mentorID uuid.UUID, skill string) error
	ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]domain.ExpertiseTag, error)
}

// Service implements mentor profile operations.
type Service struct {
	log       *slog.Logger
	mentors   mentorRepo
	expertise expertiseRepo
	cfg       config.OnboardingConfig
}

// NewService creates a new mentor profile service instance. The onboarding
// config is shared because the skill-count cap applies at onboarding and
// afterwards alike.
func NewService(logger *slog.Logger, mentors mentorRepo, expertise expertiseRepo, cfg config.OnboardingConfig) *Service {
	return &Service{
		log:       logger.With("service", "mentorprofile"),
		mentors:   mentors,
		expertise: expertise,
		cfg:       cfg,
	}
}
