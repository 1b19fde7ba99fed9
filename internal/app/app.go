package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mentorhive/mentorhive-backend/internal/adapter/postgres"
	actorrepo "github.com/mentorhive/mentorhive-backend/internal/adapter/postgres/actor"
	bookingrepo "github.com/mentorhive/mentorhive-backend/internal/adapter/postgres/booking"
	expertiserepo "github.com/mentorhive/mentorhive-backend/internal/adapter/postgres/expertise"
	mentorrepo "github.com/mentorhive/mentorhive-backend/internal/adapter/postgres/mentor"
	notificationrepo "github.com/mentorhive/mentorhive-backend/internal/adapter/postgres/notification"
	tokenrepo "github.com/mentorhive/mentorhive-backend/internal/adapter/postgres/token"
	authpkg "github.com/mentorhive/mentorhive-backend/internal/auth"
	"github.com/mentorhive/mentorhive-backend/internal/config"
	approvalsvc "github.com/mentorhive/mentorhive-backend/internal/service/approval"
	authsvc "github.com/mentorhive/mentorhive-backend/internal/service/auth"
	bookingsvc "github.com/mentorhive/mentorhive-backend/internal/service/booking"
	"github.com/mentorhive/mentorhive-backend/internal/service/mentorprofile"
	notificationsvc "github.com/mentorhive/mentorhive-backend/internal/service/notification"
	onboardingsvc "github.com/mentorhive/mentorhive-backend/internal/service/onboarding"
	"github.com/mentorhive/mentorhive-backend/internal/transport/middleware"
	"github.com/mentorhive/mentorhive-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories into services, and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("database migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	actorRepo := actorrepo.New(pool)
	mentorRepo := mentorrepo.New(pool)
	expertiseRepo := expertiserepo.New(pool)
	bookingRepo := bookingrepo.New(pool)
	notificationRepo := notificationrepo.New(pool)
	tokenRepo := tokenrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	notificationService := notificationsvc.NewService(logger, notificationRepo)
	onboardingService := onboardingsvc.NewService(
		logger, actorRepo, mentorRepo, expertiseRepo, tokenRepo, txm, jwtMgr,
		cfg.Onboarding, cfg.Auth,
	)
	authService := authsvc.NewService(logger, actorRepo, tokenRepo, jwtMgr, cfg.Auth)
	approvalService := approvalsvc.NewService(logger, mentorRepo, notificationService)
	bookingService := bookingsvc.NewService(logger, bookingRepo, mentorRepo, notificationService, cfg.Booking)
	profileService := mentorprofile.NewService(logger, mentorRepo, expertiseRepo, cfg.Onboarding)

	// HTTP transport.
	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
		Auth:         rest.NewAuthHandler(authService, logger),
		Onboarding:   rest.NewOnboardingHandler(onboardingService, logger),
		Admin:        rest.NewAdminHandler(approvalService, logger),
		Booking:      rest.NewBookingHandler(bookingService, logger),
		Notification: rest.NewNotificationHandler(notificationService, logger),
		Mentor:       rest.NewMentorHandler(profileService, logger),

		TokenValidator: authService,
		Logger:         logger,
		CORS:           cfg.CORS,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
	})

	return serveHTTP(ctx, logger, cfg.Server, router)
}
