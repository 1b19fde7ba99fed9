package domain

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a long-lived credential stored hashed. The raw token never
// touches the database.
type RefreshToken struct {
	ID        uuid.UUID
	ActorID   uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsActive reports whether the token is usable at now.
func (t *RefreshToken) IsActive(now time.Time) bool {
	return t.RevokedAt == nil && t.ExpiresAt.After(now)
}
