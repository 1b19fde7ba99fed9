package mentorprofile

import (
	"strings"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// UpdateProfileInput holds mentor self-edits. Nil fields are left untouched.
type UpdateProfileInput struct {
	HourlyRate       *int
	YearsExperience  *int
	OrganizationName *string
}

// Validate validates the profile update input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.HourlyRate == nil && i.YearsExperience == nil && i.OrganizationName == nil {
		errs = append(errs, domain.FieldError{Field: "profile", Message: "nothing to update"})
	}
	if i.HourlyRate != nil && *i.HourlyRate <= 0 {
		errs = append(errs, domain.FieldError{Field: "hourly_rate", Message: "must be a positive amount"})
	}
	if i.YearsExperience != nil && *i.YearsExperience < 0 {
		errs = append(errs, domain.FieldError{Field: "years_experience", Message: "must not be negative"})
	}
	if i.OrganizationName != nil && strings.TrimSpace(*i.OrganizationName) == "" {
		errs = append(errs, domain.FieldError{Field: "organization_name", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// normalizeSkill lowercases and trims a skill tag so "Go" and "go " collapse
// to one entry.
func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
