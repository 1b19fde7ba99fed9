package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/config"
	"github.com/mentorhive/mentorhive-backend/internal/transport/middleware"
)

// TokenValidator resolves a bearer token into an actor identity and role.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// RouterDeps bundles the handlers and middleware inputs for NewRouter.
type RouterDeps struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Onboarding   *OnboardingHandler
	Admin        *AdminHandler
	Booking      *BookingHandler
	Notification *NotificationHandler
	Mentor       *MentorHandler

	TokenValidator TokenValidator
	Logger         *slog.Logger
	CORS           config.CORSConfig
	RateLimit      config.RateLimitConfig
	RateLimiter    *middleware.RateLimiter
}

// NewRouter assembles the HTTP mux with the full middleware chain. Every
// route passes through Auth; requests without a token stay anonymous and
// the services decide what anonymous callers may do.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	mux.HandleFunc("POST /auth/login", deps.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", deps.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", deps.Auth.Logout)

	mux.HandleFunc("POST /onboarding/sessions", deps.Onboarding.Start)
	mux.HandleFunc("POST /onboarding/sessions/{id}/step", deps.Onboarding.SubmitStep)
	mux.HandleFunc("POST /onboarding/sessions/{id}/back", deps.Onboarding.GoBack)
	mux.HandleFunc("POST /onboarding/sessions/{id}/finalize", deps.Onboarding.Finalize)

	mux.HandleFunc("GET /admin/mentors/pending", deps.Admin.ListPending)
	mux.HandleFunc("POST /admin/mentors/{id}/decision", deps.Admin.Decide)

	mux.HandleFunc("POST /bookings", deps.Booking.Request)
	mux.HandleFunc("GET /bookings", deps.Booking.List)
	mux.HandleFunc("POST /bookings/{id}/respond", deps.Booking.Respond)
	mux.HandleFunc("POST /bookings/{id}/cancel", deps.Booking.Cancel)
	mux.HandleFunc("POST /bookings/{id}/complete", deps.Booking.Complete)

	mux.HandleFunc("GET /notifications", deps.Notification.List)
	mux.HandleFunc("POST /notifications/{id}/read", deps.Notification.MarkRead)

	mux.HandleFunc("GET /mentors", deps.Mentor.Directory)
	mux.HandleFunc("GET /mentors/me", deps.Mentor.GetProfile)
	mux.HandleFunc("PATCH /mentors/me", deps.Mentor.UpdateProfile)
	mux.HandleFunc("POST /mentors/me/skills", deps.Mentor.AddSkill)
	mux.HandleFunc("DELETE /mentors/me/skills/{skill}", deps.Mentor.RemoveSkill)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	}
	if deps.RateLimit.Enabled && deps.RateLimiter != nil {
		mws = append(mws, deps.RateLimiter.Limit(deps.RateLimit.RequestsPerMinute))
	}
	mws = append(mws, middleware.Auth(deps.TokenValidator))

	return middleware.Chain(mws...)(mux)
}
