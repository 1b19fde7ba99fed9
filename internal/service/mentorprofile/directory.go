package mentorprofile

import (
	"context"
	"fmt"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// DirectoryFilter narrows the public directory listing.
type DirectoryFilter struct {
	Skill   *string
	MaxRate *int
	Limit   int
	Offset  int
}

// Directory lists active mentors for public browsing, oldest first,
// optionally filtered by skill and a maximum hourly rate. Each entry carries
// the mentor's skill tags. No authentication is required.
func (s *Service) Directory(ctx context.Context, filter DirectoryFilter) ([]*Profile, error) {
	if filter.MaxRate != nil && *filter.MaxRate <= 0 {
		return nil, domain.NewValidationError("max_rate", "must be a positive amount")
	}
	if filter.Skill != nil {
		normalized := normalizeSkill(*filter.Skill)
		if normalized == "" {
			return nil, domain.NewValidationError("skill", "must not be blank")
		}
		filter.Skill = &normalized
	}

	limit := filter.Limit
	if limit <= 0 || limit > directoryListLimit {
		limit = directoryListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	records, err := s.mentors.ListActive(ctx, filter.Skill, filter.MaxRate, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("mentorprofile.Directory: %w", err)
	}

	profiles := make([]*Profile, 0, len(records))
	for _, rec := range records {
		skills, err := s.expertise.ListByMentor(ctx, rec.ID)
		if err != nil {
			return nil, fmt.Errorf("mentorprofile.Directory skills: %w", err)
		}
		profiles = append(profiles, &Profile{Record: rec, Skills: skills})
	}
	return profiles, nil
}
