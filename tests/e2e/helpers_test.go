//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/mentorhive/mentorhive-backend/internal/adapter/postgres"
	actorrepo "github.com/mentorhive/mentorhive-backend/internal/adapter/postgres/actor"
	bookingrepo "github.com/mentorhive/mentorhive-backend/internal/adapter/postgres/booking"
	expertiserepo "github.com/mentorhive/mentorhive-backend/internal/adapter/postgres/expertise"
	mentorrepo "github.com/mentorhive/mentorhive-backend/internal/adapter/postgres/mentor"
	notificationrepo "github.com/mentorhive/mentorhive-backend/internal/adapter/postgres/notification"
	"github.com/mentorhive/mentorhive-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/mentorhive/mentorhive-backend/internal/adapter/postgres/token"
	authpkg "github.com/mentorhive/mentorhive-backend/internal/auth"
	"github.com/mentorhive/mentorhive-backend/internal/config"
	"github.com/mentorhive/mentorhive-backend/internal/domain"
	approvalsvc "github.com/mentorhive/mentorhive-backend/internal/service/approval"
	authsvc "github.com/mentorhive/mentorhive-backend/internal/service/auth"
	bookingsvc "github.com/mentorhive/mentorhive-backend/internal/service/booking"
	"github.com/mentorhive/mentorhive-backend/internal/service/mentorprofile"
	notificationsvc "github.com/mentorhive/mentorhive-backend/internal/service/notification"
	onboardingsvc "github.com/mentorhive/mentorhive-backend/internal/service/onboarding"
	"github.com/mentorhive/mentorhive-backend/internal/transport/rest"
)

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	actorRepo := actorrepo.New(pool)
	mentorRepo := mentorrepo.New(pool)
	expertiseRepo := expertiserepo.New(pool)
	bookingRepo := bookingrepo.New(pool)
	notificationRepo := notificationrepo.New(pool)
	tokenRepo := tokenrepo.New(pool)

	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtMgr := authpkg.NewJWTManager(jwtSecret, "test-issuer", 15*time.Minute)

	authCfg := config.AuthConfig{
		JWTSecret:        jwtSecret,
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4, // min bcrypt cost, keeps the suite fast
	}
	onboardingCfg := config.OnboardingConfig{
		SessionTTL:        time.Hour,
		AllowedEmailTLDs:  "com,in,edu",
		BlockedProviders:  "gmail.com,yahoo.com,outlook.com,hotmail.com",
		MaxExpertiseSkill: 10,
	}

	notificationService := notificationsvc.NewService(logger, notificationRepo)
	onboardingService := onboardingsvc.NewService(
		logger, actorRepo, mentorRepo, expertiseRepo, tokenRepo, txm, jwtMgr,
		onboardingCfg, authCfg,
	)
	authService := authsvc.NewService(logger, actorRepo, tokenRepo, jwtMgr, authCfg)
	approvalService := approvalsvc.NewService(logger, mentorRepo, notificationService)
	bookingService := bookingsvc.NewService(logger, bookingRepo, mentorRepo, notificationService,
		config.BookingConfig{MinLeadTime: 0, ListLimit: 50})
	profileService := mentorprofile.NewService(logger, mentorRepo, expertiseRepo, onboardingCfg)

	router := rest.NewRouter(rest.RouterDeps{
		Health:       rest.NewHealthHandler(pool, "test-version"),
		Auth:         rest.NewAuthHandler(authService, logger),
		Onboarding:   rest.NewOnboardingHandler(onboardingService, logger),
		Admin:        rest.NewAdminHandler(approvalService, logger),
		Booking:      rest.NewBookingHandler(bookingService, logger),
		Notification: rest.NewNotificationHandler(notificationService, logger),
		Mentor:       rest.NewMentorHandler(profileService, logger),

		TokenValidator: authService,
		Logger:         logger,
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{Enabled: false},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// doJSON sends a request with an optional JSON body and bearer token, and
// returns the status code plus the decoded response body.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		result = nil
	}
	return resp.StatusCode, result
}

// submitStep posts the given values to the session's current step and
// requires the step to be accepted.
func (ts *testServer) submitStep(t *testing.T, sessionID string, values map[string]string) map[string]any {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost,
		"/onboarding/sessions/"+sessionID+"/step", "",
		map[string]any{"values": values})
	require.Equal(t, http.StatusOK, status, "step rejected: %v", body)
	return body
}

// onboardStudent drives the student wizard end to end and returns the
// finalize payload (actor + credential pair).
func (ts *testServer) onboardStudent(t *testing.T, email, password string, age int, guardianEmail string) map[string]any {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/onboarding/sessions", "",
		map[string]any{"kind": "student"})
	require.Equal(t, http.StatusCreated, status, "start session: %v", body)
	sessionID := body["id"].(string)

	ts.submitStep(t, sessionID, map[string]string{
		"display_name":  "E2E Student",
		"contact_email": email,
		"password":      password,
	})
	ts.submitStep(t, sessionID, map[string]string{
		"age_years": fmt.Sprintf("%d", age),
	})
	ts.submitStep(t, sessionID, map[string]string{
		"interests": "backend,distributed systems",
	})
	if guardianEmail != "" {
		ts.submitStep(t, sessionID, map[string]string{
			"guardian_email": guardianEmail,
		})
	}
	// Review step accepts an acknowledgement-only submission.
	ts.submitStep(t, sessionID, map[string]string{"confirm": "true"})

	status, body = ts.doJSON(t, http.MethodPost,
		"/onboarding/sessions/"+sessionID+"/finalize", "", nil)
	require.Equal(t, http.StatusCreated, status, "finalize: %v", body)
	return body
}

// onboardOfflineOrgMentor drives the offline-organization mentor wizard end
// to end and returns the finalize payload. The resulting mentor record is
// pending approval.
func (ts *testServer) onboardOfflineOrgMentor(t *testing.T, email, password string) map[string]any {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/onboarding/sessions", "",
		map[string]any{"kind": "mentor"})
	require.Equal(t, http.StatusCreated, status, "start session: %v", body)
	sessionID := body["id"].(string)

	ts.submitStep(t, sessionID, map[string]string{
		"display_name":  "E2E Offline Org",
		"contact_email": email,
		"password":      password,
	})
	ts.submitStep(t, sessionID, map[string]string{
		"mentor_kind": "organization",
		"org_mode":    "offline",
	})
	ts.submitStep(t, sessionID, map[string]string{"notice_ack": "true"})
	ts.submitStep(t, sessionID, map[string]string{
		"organization_name": "Offline Mentors Guild",
		"founder":           "A. Founder",
		"address":           "12 Harbor Lane",
		"domain":            "mathematics",
		"hourly_rate":       "4500",
	})
	ts.submitStep(t, sessionID, map[string]string{"confirm": "true"})

	status, body = ts.doJSON(t, http.MethodPost,
		"/onboarding/sessions/"+sessionID+"/finalize", "", nil)
	require.Equal(t, http.StatusCreated, status, "finalize: %v", body)
	return body
}

// onboardIndividualMentor drives the individual mentor wizard end to end.
// The resulting mentor record is active immediately.
func (ts *testServer) onboardIndividualMentor(t *testing.T, email, password string) map[string]any {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/onboarding/sessions", "",
		map[string]any{"kind": "mentor"})
	require.Equal(t, http.StatusCreated, status, "start session: %v", body)
	sessionID := body["id"].(string)

	ts.submitStep(t, sessionID, map[string]string{
		"display_name":  "E2E Individual Mentor",
		"contact_email": email,
		"password":      password,
	})
	ts.submitStep(t, sessionID, map[string]string{
		"mentor_kind": "individual",
	})
	ts.submitStep(t, sessionID, map[string]string{
		"skills":           "go,postgres",
		"hourly_rate":      "6000",
		"years_experience": "5",
	})
	ts.submitStep(t, sessionID, map[string]string{"confirm": "true"})

	status, body = ts.doJSON(t, http.MethodPost,
		"/onboarding/sessions/"+sessionID+"/finalize", "", nil)
	require.Equal(t, http.StatusCreated, status, "finalize: %v", body)
	return body
}

// adminToken seeds an admin actor and mints an access token for it.
func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()

	admin := testhelper.SeedActor(t, ts.Pool, domain.ActorRoleAdmin)
	token, err := ts.jwt.GenerateAccessToken(admin.ID, "admin")
	require.NoError(t, err)
	return token
}

// uniqueEmail returns a non-conflicting email for test actors.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.New().String()[:8])
}
