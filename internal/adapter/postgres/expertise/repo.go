// Package expertise implements the ExpertiseTag repository using PostgreSQL.
package expertise

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentorhive/mentorhive-backend/internal/adapter/postgres"
	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

const table = "mentor_expertise"

// Repo provides expertise tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new expertise repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert adds a skill for a mentor. Re-adding an existing skill is a no-op,
// which keeps finalize retries safe.
func (r *Repo) Upsert(ctx context.Context, mentorID uuid.UUID, skill string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("mentor_id", "skill", "created_at").
		Values(mentorID, skill, time.Now().UTC()).
		Suffix("ON CONFLICT (mentor_id, skill) DO NOTHING").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "expertise_tag", mentorID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "expertise_tag", mentorID)
	}
	return nil
}

// Delete removes a skill. Returns domain.ErrNotFound if the tag did not exist.
func (r *Repo) Delete(ctx context.Context, mentorID uuid.UUID, skill string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"mentor_id": mentorID, "skill": skill}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "expertise_tag", mentorID)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "expertise_tag", mentorID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expertise_tag %s/%s: %w", mentorID, skill, domain.ErrNotFound)
	}
	return nil
}

// ListByMentor returns a mentor's skills in insertion order.
func (r *Repo) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]domain.ExpertiseTag, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("mentor_id", "skill", "created_at").
		From(table).
		Where(squirrel.Eq{"mentor_id": mentorID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list expertise: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list expertise_tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.ExpertiseTag
	for rows.Next() {
		var tag domain.ExpertiseTag
		if err := rows.Scan(&tag.MentorID, &tag.Skill, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expertise_tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expertise_tags: %w", err)
	}

	return tags, nil
}
