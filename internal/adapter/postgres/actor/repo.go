// Package actor implements the Actor repository using PostgreSQL.
package actor

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentorhive/mentorhive-backend/internal/adapter/postgres"
	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

const table = "actors"

var columns = []string{
	"id", "display_name", "contact_email", "phone", "role",
	"age_years", "guardian_email", "created_at", "updated_at",
}

// Repo provides actor persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new actor repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns an actor by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "actor", id)
	}

	a, err := scanActor(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "actor", id)
	}
	return a, nil
}

// GetByEmail returns an actor by contact email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Actor, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"contact_email": email}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "actor", uuid.Nil)
	}

	a, err := scanActor(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "actor", uuid.Nil)
	}
	return a, nil
}

// GetPasswordHash returns the stored bcrypt hash for an actor.
func (r *Repo) GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("password_hash").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", postgres.MapError(err, "actor", id)
	}

	var hash string
	if err := q.QueryRow(ctx, sql, args...).Scan(&hash); err != nil {
		return "", postgres.MapError(err, "actor", id)
	}
	return hash, nil
}

// Create inserts a new actor. The contact email carries a unique constraint;
// a duplicate maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.Actor, passwordHash string) (*domain.Actor, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "display_name", "contact_email", "phone", "role",
			"age_years", "guardian_email", "password_hash", "created_at", "updated_at").
		Values(a.ID, a.DisplayName, a.ContactEmail, a.Phone, a.Role.String(),
			a.AgeYears, a.GuardianEmail, passwordHash, now, now).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "actor", a.ID)
	}

	created, err := scanActor(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "actor", a.ID)
	}
	return created, nil
}

func joinColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}

type row interface {
	Scan(dest ...any) error
}

func scanActor(r row) (*domain.Actor, error) {
	var (
		a    domain.Actor
		role string
	)
	err := r.Scan(
		&a.ID, &a.DisplayName, &a.ContactEmail, &a.Phone, &role,
		&a.AgeYears, &a.GuardianEmail, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Role = domain.ActorRole(role)
	return &a, nil
}
