package onboarding

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// StartSession opens a new wizard session for the given actor-kind hint.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*SessionView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	sess := &session{
		id:        uuid.New(),
		kind:      domain.OnboardingKind(input.Kind),
		flds:      fields{},
		createdAt: now,
		updatedAt: now,
	}
	s.sessions.put(sess)

	s.log.InfoContext(ctx, "onboarding session started",
		slog.String("session_id", sess.id.String()),
		slog.String("kind", input.Kind))

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(s.cfg.SessionTTL), nil
}
