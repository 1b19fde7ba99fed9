package mentorprofile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/pkg/ctxutil"
)

// AddSkill tags the calling mentor with a skill. The per-mentor cap that
// applies during onboarding applies here too.
func (s *Service) AddSkill(ctx context.Context, skill string) error {
	callerID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return fmt.Errorf("mentorprofile.AddSkill: %w", domain.ErrUnauthorized)
	}

	skill = normalizeSkill(skill)
	if skill == "" {
		return domain.NewValidationError("skill", "required")
	}

	rec, err := s.mentors.GetByActorID(ctx, callerID)
	if err != nil {
		return fmt.Errorf("mentorprofile.AddSkill: %w", err)
	}

	existing, err := s.expertise.ListByMentor(ctx, rec.ID)
	if err != nil {
		return fmt.Errorf("mentorprofile.AddSkill list: %w", err)
	}
	for _, tag := range existing {
		if tag.Skill == skill {
			return nil // already tagged, adding again is a no-op
		}
	}
	if len(existing) >= s.cfg.MaxExpertiseSkill {
		return domain.NewValidationError("skill",
			fmt.Sprintf("at most %d skills allowed", s.cfg.MaxExpertiseSkill))
	}

	if err := s.expertise.Upsert(ctx, rec.ID, skill); err != nil {
		return fmt.Errorf("mentorprofile.AddSkill: %w", err)
	}

	s.log.InfoContext(ctx, "skill added",
		slog.String("mentor_id", rec.ID.String()),
		slog.String("skill", skill))
	return nil
}

// RemoveSkill untags the calling mentor. Removing an absent skill reads as
// not found.
func (s *Service) RemoveSkill(ctx context.Context, skill string) error {
	callerID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return fmt.Errorf("mentorprofile.RemoveSkill: %w", domain.ErrUnauthorized)
	}

	skill = normalizeSkill(skill)
	if skill == "" {
		return domain.NewValidationError("skill", "required")
	}

	rec, err := s.mentors.GetByActorID(ctx, callerID)
	if err != nil {
		return fmt.Errorf("mentorprofile.RemoveSkill: %w", err)
	}

	if err := s.expertise.Delete(ctx, rec.ID, skill); err != nil {
		return fmt.Errorf("mentorprofile.RemoveSkill: %w", err)
	}

	s.log.InfoContext(ctx, "skill removed",
		slog.String("mentor_id", rec.ID.String()),
		slog.String("skill", skill))
	return nil
}
