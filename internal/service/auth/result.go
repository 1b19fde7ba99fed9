package auth

import "github.com/mentorhive/mentorhive-backend/internal/domain"

// AuthResult is returned by Login and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	Actor        *domain.Actor
}
