package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedActor creates an actor with the given role. Returns a filled domain.Actor.
func SeedActor(t *testing.T, pool *pgxpool.Pool, role domain.ActorRole) domain.Actor {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	actor := domain.Actor{
		ID:           uuid.New(),
		DisplayName:  "Test Actor " + suffix,
		ContactEmail: "actor-" + suffix + "@example.com",
		Phone:        "+1000" + suffix[:4],
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO actors (id, display_name, contact_email, phone, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		actor.ID, actor.DisplayName, actor.ContactEmail, actor.Phone, actor.Role.String(),
		"$2a$10$seedseedseedseedseedseedseedseedseedseedseedseedseedsa", actor.CreatedAt, actor.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActor insert: %v", err)
	}

	return actor
}

// SeedMentor creates a mentor actor plus a mentor record in the given branch
// and approval status. Returns the filled domain.MentorRecord.
func SeedMentor(t *testing.T, pool *pgxpool.Pool, branch domain.MentorBranch, status domain.ApprovalStatus) domain.MentorRecord {
	t.Helper()
	ctx := context.Background()

	actor := SeedActor(t, pool, domain.ActorRoleMentor)
	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.MentorRecord{
		ID:              uuid.New(),
		ActorID:         actor.ID,
		Branch:          branch,
		ApprovalStatus:  status,
		Attributes:      domain.AttributeBag{domain.AttrType: branch.String()},
		HourlyRate:      5000,
		YearsExperience: 3,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO mentor_records (id, actor_id, branch, approval_status, attributes, hourly_rate, years_experience, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.ActorID, rec.Branch.String(), rec.ApprovalStatus.String(),
		[]byte(`{"type":"`+branch.String()+`"}`), rec.HourlyRate, rec.YearsExperience,
		rec.Version, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMentor insert: %v", err)
	}

	return rec
}

// SeedBooking creates a pending booking between the given student and mentor
// at the given instant. Returns the filled domain.Booking.
func SeedBooking(t *testing.T, pool *pgxpool.Pool, studentID, mentorID uuid.UUID, scheduledAt time.Time) domain.Booking {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	b := domain.Booking{
		ID:          uuid.New(),
		StudentID:   studentID,
		MentorID:    mentorID,
		ScheduledAt: scheduledAt.UTC().Truncate(time.Microsecond),
		Status:      domain.BookingPending,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO bookings (id, student_id, mentor_id, scheduled_at, status, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.StudentID, b.MentorID, b.ScheduledAt, b.Status.String(), b.Version, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBooking insert: %v", err)
	}

	return b
}
