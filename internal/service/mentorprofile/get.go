package mentorprofile

import (
	"context"
	"fmt"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/pkg/ctxutil"
)

// Profile is a mentor record together with its skill tags.
type Profile struct {
	Record *domain.MentorRecord
	Skills []domain.ExpertiseTag
}

// Get returns the calling mentor's own profile.
func (s *Service) Get(ctx context.Context) (*Profile, error) {
	callerID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("mentorprofile.Get: %w", domain.ErrUnauthorized)
	}

	rec, err := s.mentors.GetByActorID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("mentorprofile.Get: %w", err)
	}
	skills, err := s.expertise.ListByMentor(ctx, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("mentorprofile.Get skills: %w", err)
	}

	return &Profile{Record: rec, Skills: skills}, nil
}
