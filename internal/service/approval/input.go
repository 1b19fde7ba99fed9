package approval

import (
	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// DecideInput holds parameters for an approval decision.
type DecideInput struct {
	MentorID uuid.UUID
	Decision string
	// Override permits re-deciding a record that is already terminal.
	// Without it a second decision on the same record is a conflict.
	Override bool
}

// Validate validates the decide input.
func (i DecideInput) Validate() error {
	var errs []domain.FieldError

	if i.MentorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "mentor_id", Message: "required"})
	}
	if i.Decision == "" {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "required"})
	} else if !domain.ApprovalDecision(i.Decision).IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be approve or reject"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
