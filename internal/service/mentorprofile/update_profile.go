package mentorprofile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/pkg/ctxutil"
)

// UpdateProfile applies the caller's self-edits to their mentor record. The
// write is a compare-and-swap on the record's version; the attribute bag is
// carried through unchanged so keys written by other flows survive.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.MentorRecord, error) {
	callerID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("mentorprofile.UpdateProfile: %w", domain.ErrUnauthorized)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.mentors.GetByActorID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("mentorprofile.UpdateProfile: %w", err)
	}

	updated, err := s.mentors.UpdateProfile(ctx, rec.ID,
		input.HourlyRate, input.YearsExperience, input.OrganizationName,
		rec.Attributes, rec.Version)
	if err != nil {
		return nil, fmt.Errorf("mentorprofile.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "mentor profile updated",
		slog.String("mentor_id", rec.ID.String()))

	return updated, nil
}
