package onboarding

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// SubmitStep validates the current step against the session's accumulated
// fields merged with the submitted values. Validation is all-or-nothing: the
// step either advances with every value stored, or nothing is stored and the
// full field error set comes back.
func (s *Service) SubmitStep(ctx context.Context, input SubmitStepInput) (*SessionView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.sessions.get(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// Validate against a candidate field set; the session is only mutated
	// once the whole step passes.
	candidate := sess.flds.clone()
	for k, v := range input.Values {
		candidate[k] = strings.TrimSpace(v)
	}

	steps := sess.steps()
	current := steps[sess.pos]
	if errs := current.validate(candidate, s.cfg); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	sess.flds = candidate
	sess.updatedAt = s.now()

	// The accepted values may have reshaped the table (minor age known,
	// mentor branch resolved), so recompute before advancing.
	steps = sess.steps()
	if sess.pos < len(steps)-1 {
		sess.pos++
	}

	s.log.InfoContext(ctx, "onboarding step accepted",
		slog.String("session_id", sess.id.String()),
		slog.String("step", current.name))

	return sess.view(s.cfg.SessionTTL), nil
}
