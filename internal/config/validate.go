package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be between 4 and 31 (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Onboarding.SessionTTL <= 0 {
		return fmt.Errorf("onboarding.session_ttl must be > 0 (got %v)", c.Onboarding.SessionTTL)
	}
	if len(c.Onboarding.EmailTLDs()) == 0 {
		return fmt.Errorf("onboarding.allowed_email_tlds must not be empty")
	}

	if c.Booking.MinLeadTime < 0 {
		return fmt.Errorf("booking.min_lead_time must be >= 0 (got %v)", c.Booking.MinLeadTime)
	}
	if c.Booking.ListLimit <= 0 {
		return fmt.Errorf("booking.list_limit must be > 0 (got %d)", c.Booking.ListLimit)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 when enabled (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

// EmailTLDs returns the parsed allow-list of top-level domains accepted for
// organization credential emails (e.g. ["com", "in", "edu"]).
func (c OnboardingConfig) EmailTLDs() []string {
	return splitTrimmed(c.AllowedEmailTLDs)
}

// BlockedEmailProviders returns the parsed list of generic providers rejected
// for organization credential emails.
func (c OnboardingConfig) BlockedEmailProviders() []string {
	return splitTrimmed(c.BlockedProviders)
}

func splitTrimmed(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
