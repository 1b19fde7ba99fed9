// Package booking implements the Booking repository using PostgreSQL.
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentorhive/mentorhive-backend/internal/adapter/postgres"
	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

const table = "bookings"

var columns = []string{
	"id", "student_id", "mentor_id", "scheduled_at", "status",
	"meeting_link", "version", "created_at", "updated_at",
}

// Repo provides booking persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new booking repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a booking by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "booking", id)
	}

	b, err := scanBooking(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "booking", id)
	}
	return b, nil
}

// Create inserts a new pending booking. A second non-terminal booking on the
// same (mentor, instant) violates the partial unique index and maps to
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "student_id", "mentor_id", "scheduled_at", "status",
			"meeting_link", "created_at", "updated_at").
		Values(b.ID, b.StudentID, b.MentorID, b.ScheduledAt, b.Status.String(),
			b.MeetingLink, now, now).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "booking", b.ID)
	}

	created, err := scanBooking(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "booking", b.ID)
	}
	return created, nil
}

// UpdateStatus applies a state transition as a compare-and-swap on
// (id, version). Zero rows matched means a concurrent writer won; the caller
// already proved the row exists, so that maps to domain.ErrConflict.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus, meetingLink *string, expectedVersion int) (*domain.Booking, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("status", status.String()).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id, "version": expectedVersion}).
		Suffix("RETURNING " + joinColumns())
	if meetingLink != nil {
		update = update.Set("meeting_link", *meetingLink)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "booking", id)
	}

	b, err := scanBooking(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("booking %s: concurrent update: %w", id, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "booking", id)
	}
	return b, nil
}

// ListByStudent returns a student's bookings, soonest first.
func (r *Repo) ListByStudent(ctx context.Context, studentID uuid.UUID, limit, offset int) ([]*domain.Booking, error) {
	return r.list(ctx, squirrel.Eq{"student_id": studentID}, limit, offset)
}

// ListByMentor returns a mentor's bookings, soonest first.
func (r *Repo) ListByMentor(ctx context.Context, mentorID uuid.UUID, limit, offset int) ([]*domain.Booking, error) {
	return r.list(ctx, squirrel.Eq{"mentor_id": mentorID}, limit, offset)
}

func (r *Repo) list(ctx context.Context, pred squirrel.Eq, limit, offset int) ([]*domain.Booking, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(pred).
		OrderBy("scheduled_at ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}

type row interface {
	Scan(dest ...any) error
}

func scanBooking(r row) (*domain.Booking, error) {
	var (
		b      domain.Booking
		status string
	)
	err := r.Scan(
		&b.ID, &b.StudentID, &b.MentorID, &b.ScheduledAt, &status,
		&b.MeetingLink, &b.Version, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Status = domain.BookingStatus(status)
	return &b, nil
}

func joinColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
