package booking

import (
	"strings"
	"time"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// ComposeTime combines a calendar date with a 12-hour clock label into an
// absolute instant in the date's location. The noon/midnight labels follow
// clock convention: "12:00 AM" is hour 0 and "12:00 PM" is hour 12.
func ComposeTime(date time.Time, label string) (time.Time, error) {
	t, err := time.Parse("3:04 PM", strings.ToUpper(strings.TrimSpace(label)))
	if err != nil {
		return time.Time{}, domain.NewValidationError("time", "must look like 03:30 PM")
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
