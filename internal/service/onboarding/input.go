package onboarding

import (
	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// StartSessionInput holds parameters for starting a wizard session.
type StartSessionInput struct {
	Kind string
}

// Validate validates the start-session input.
func (i StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.Kind == "" {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "required"})
	} else if !domain.OnboardingKind(i.Kind).IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be student or mentor"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SubmitStepInput holds parameters for submitting the current step's values.
type SubmitStepInput struct {
	SessionID uuid.UUID
	Values    map[string]string
}

// Validate validates the submit-step input.
func (i SubmitStepInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if len(i.Values) == 0 {
		errs = append(errs, domain.FieldError{Field: "values", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
