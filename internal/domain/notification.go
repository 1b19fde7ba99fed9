package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an append-only message delivered to an actor on a state
// transition. Only the Read flag is ever mutated; notifications are never
// deleted.
type Notification struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	Message     string
	Link        *string
	Read        bool
	CreatedAt   time.Time
}
