package domain

import (
	"time"

	"github.com/google/uuid"
)

// GuardianAgeThreshold is the age below which a student must supply a
// guardian email during onboarding.
const GuardianAgeThreshold = 16

// Actor represents any registered user: student, mentor, or admin.
// Actors are created once at onboarding completion and never deleted.
type Actor struct {
	ID            uuid.UUID
	DisplayName   string
	ContactEmail  string
	Phone         string
	Role          ActorRole
	AgeYears      *int    // students only
	GuardianEmail *string // required iff AgeYears < GuardianAgeThreshold
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsMinor reports whether the actor is a student below the guardian threshold.
// Actors without a recorded age are treated as adults.
func (a *Actor) IsMinor() bool {
	return a.AgeYears != nil && *a.AgeYears < GuardianAgeThreshold
}
