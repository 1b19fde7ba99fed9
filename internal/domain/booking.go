package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a scheduled session request between a student and a mentor.
// Version guards optimistic concurrency on status transitions.
type Booking struct {
	ID          uuid.UUID
	StudentID   uuid.UUID
	MentorID    uuid.UUID
	ScheduledAt time.Time
	Status      BookingStatus
	MeetingLink *string
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanComplete reports whether the booking may be marked completed at now:
// it must be confirmed and its scheduled time must have passed.
func (b *Booking) CanComplete(now time.Time) bool {
	return b.Status == BookingConfirmed && b.ScheduledAt.Before(now)
}
