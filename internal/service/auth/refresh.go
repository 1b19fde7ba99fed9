package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mentorhive/mentorhive-backend/internal/auth"
	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// Refresh performs token rotation and returns a new access/refresh pair.
// A refresh token that is unknown, revoked, or expired maps to
// ErrUnauthorized; an unknown token additionally logs a warning since it may
// be a reuse attempt.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}
	if !token.IsActive(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	actor, err := s.actors.GetByID(ctx, token.ActorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for unknown actor",
				slog.String("actor_id", token.ActorID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get actor: %w", err)
	}

	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	result, err := s.issueTokens(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}
