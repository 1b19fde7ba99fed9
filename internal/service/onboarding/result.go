package onboarding

import (
	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// FinalizeResult is returned by a successful Finalize: the persisted records
// plus a fresh credential pair so the client is signed in immediately.
type FinalizeResult struct {
	Actor        *domain.Actor
	MentorRecord *domain.MentorRecord // nil for students
	AccessToken  string
	RefreshToken string
}
