package domain

import (
	"time"

	"github.com/google/uuid"
)

// Canonical attribute-bag keys for mentor branch data. Other readers (the
// approval queue, the public directory) parse this same structure, so the
// names are part of the external contract and must not change.
const (
	AttrType    = "type"
	AttrRole    = "role"
	AttrWebsite = "website"
	AttrDomain  = "domain"
	AttrAddress = "address"
	AttrFounder = "founder"
	AttrStatus  = "status" // legacy key, preserved verbatim but never consulted
)

// AttributeBag is a schema-light document attached to a MentorRecord holding
// branch-specific facts. Only the keys relevant to the branch that created
// the record are populated. Unknown keys must survive every read-modify-write.
type AttributeBag map[string]any

// GetString returns the string value under key, or "" when the key is absent
// or holds a non-string value.
func (b AttributeBag) GetString(key string) string {
	if b == nil {
		return ""
	}
	s, _ := b[key].(string)
	return s
}

// Set stores value under key, allocating the bag if needed, and returns it.
func (b AttributeBag) Set(key string, value any) AttributeBag {
	if b == nil {
		b = AttributeBag{}
	}
	b[key] = value
	return b
}

// Clone returns a shallow copy so callers can mutate without aliasing.
func (b AttributeBag) Clone() AttributeBag {
	if b == nil {
		return nil
	}
	out := make(AttributeBag, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// MentorRecord is the role record created for a mentor at onboarding
// completion. ApprovalStatus is a first-class field; branch-only facts live
// in Attributes. Version guards optimistic concurrency on status writes.
type MentorRecord struct {
	ID               uuid.UUID
	ActorID          uuid.UUID
	Branch           MentorBranch
	OrganizationName *string
	ApprovalStatus   ApprovalStatus
	Attributes       AttributeBag
	HourlyRate       int // smallest currency unit per hour
	YearsExperience  int
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ExpertiseTag is a (mentor, skill) pair, unique per mentor. Tags are managed
// by the mentor independently of approval status.
type ExpertiseTag struct {
	MentorID  uuid.UUID
	Skill     string
	CreatedAt time.Time
}
