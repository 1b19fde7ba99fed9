package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// RequestInput holds parameters for requesting a session. Callers supply
// either an absolute ScheduledAt or a calendar date plus a 12-hour label,
// which the service composes.
type RequestInput struct {
	MentorID    uuid.UUID
	ScheduledAt *time.Time
	Date        string // 2006-01-02, used with TimeLabel
	TimeLabel   string // e.g. "02:30 PM"
}

// Validate validates the request input.
func (i RequestInput) Validate() error {
	var errs []domain.FieldError

	if i.MentorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "mentor_id", Message: "required"})
	}

	if i.ScheduledAt == nil {
		if i.Date == "" {
			errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
		} else if _, err := time.Parse("2006-01-02", i.Date); err != nil {
			errs = append(errs, domain.FieldError{Field: "date", Message: "must look like 2026-01-31"})
		}
		if i.TimeLabel == "" {
			errs = append(errs, domain.FieldError{Field: "time", Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// resolveInstant returns the absolute scheduled time.
func (i RequestInput) resolveInstant() (time.Time, error) {
	if i.ScheduledAt != nil {
		return *i.ScheduledAt, nil
	}
	date, err := time.Parse("2006-01-02", i.Date)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "must look like 2026-01-31")
	}
	return ComposeTime(date, i.TimeLabel)
}

// RespondInput holds parameters for a mentor's verdict on a pending booking.
type RespondInput struct {
	BookingID   uuid.UUID
	Decision    string  // confirmed | cancelled
	MeetingLink *string // attached on confirm
}

// Validate validates the respond input.
func (i RespondInput) Validate() error {
	var errs []domain.FieldError

	if i.BookingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "booking_id", Message: "required"})
	}
	switch domain.BookingStatus(i.Decision) {
	case domain.BookingConfirmed, domain.BookingCancelled:
	default:
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be confirmed or cancelled"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
