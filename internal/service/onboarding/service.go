// Package onboarding implements the multi-step registration wizard: branch
// classification, per-step validation, and the atomic finalize that turns a
// completed session into persistent records.
package onboarding

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/config"
	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// actorRepo defines the actor repository interface needed by the onboarding service.
type actorRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Actor, error)
	GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error)
	Create(ctx context.Context, a *domain.Actor, passwordHash string) (*domain.Actor, error)
}

// mentorRepo defines the mentor record repository interface needed by the onboarding service.
type mentorRepo interface {
	Upsert(ctx context.Context, rec *domain.MentorRecord) (*domain.MentorRecord, error)
}

// expertiseRepo defines the expertise repository interface needed by the onboarding service.
type expertiseRepo interface {
	Upsert(ctx context.Context, mentorID uuid.UUID, skill string) error
}

// tokenRepo defines the refresh token repository interface needed by the onboarding service.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
}

// txManager defines the transaction manager interface needed by the onboarding service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by the onboarding service.
type jwtManager interface {
	GenerateAccessToken(actorID uuid.UUID, role string) (string, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Service implements onboarding operations.
type Service struct {
	log       *slog.Logger
	sessions  *sessionStore
	actors    actorRepo
	mentors   mentorRepo
	expertise expertiseRepo
	tokens    tokenRepo
	tx        txManager
	jwt       jwtManager
	cfg       config.OnboardingConfig
	authCfg   config.AuthConfig
	now       func() time.Time
}

// NewService creates a new onboarding service instance.
func NewService(
	logger *slog.Logger,
	actors actorRepo,
	mentors mentorRepo,
	expertise expertiseRepo,
	tokens tokenRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.OnboardingConfig,
	authCfg config.AuthConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "onboarding"),
		sessions:  newSessionStore(cfg.SessionTTL),
		actors:    actors,
		mentors:   mentors,
		expertise: expertise,
		tokens:    tokens,
		tx:        tx,
		jwt:       jwt,
		cfg:       cfg,
		authCfg:   authCfg,
		now:       time.Now,
	}
}
