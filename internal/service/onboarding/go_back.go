package onboarding

import (
	"context"

	"github.com/google/uuid"
)

// GoBack moves the wizard one step backwards. Previously entered values stay
// in the session, so returning forward re-presents them without loss.
func (s *Service) GoBack(ctx context.Context, sessionID uuid.UUID) (*SessionView, error) {
	sess, err := s.sessions.get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.pos > 0 {
		sess.pos--
	}
	sess.clampPos()
	sess.updatedAt = s.now()

	return sess.view(s.cfg.SessionTTL), nil
}
