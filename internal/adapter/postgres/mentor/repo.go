// Package mentor implements the MentorRecord repository using PostgreSQL.
//
// The attribute bag is stored as jsonb and treated as parse-don't-trust on
// read: a row whose bag cannot be decoded into an object is reported to the
// caller instead of failing the whole query. Writes always carry the full
// bag so unknown keys written by other code paths survive.
package mentor

import (
	"context"
	"encoding/json"
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

const table = "mentor_records"

var columns = []string{
	"id", "actor_id", "branch", "organization_name", "approval_status",
	"attributes", "hourly_rate", "years_experience", "version",
	"created_at", "updated_at",
}

// Repo provides mentor record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mentor record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a mentor record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MentorRecord, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, id)
}

// GetByActorID returns the mentor record owned by the given actor.
func (r *Repo) GetByActorID(ctx context.Context, actorID uuid.UUID) (*domain.MentorRecord, error) {
	return r.getBy(ctx, squirrel.Eq{"actor_id": actorID}, actorID)
}

func (r *Repo) getBy(ctx context.Context, pred squirrel.Eq, id uuid.UUID) (*domain.MentorRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(pred).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "mentor_record", id)
	}

	rec, _, err := scanRecord(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "mentor_record", id)
	}
	return rec, nil
}

// Upsert inserts a mentor record keyed by its natural unique key (actor_id).
// A retry after a half-failed finalize lands on the existing row instead of
// erroring, which keeps record creation idempotent for the caller.
func (r *Repo) Upsert(ctx context.Context, rec *domain.MentorRecord) (*domain.MentorRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	attrs, err := encodeBag(rec.Attributes)
	if err != nil {
		return nil, fmt.Errorf("encode attributes: %w", err)
	}

	now := time.Now().UTC()
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "actor_id", "branch", "organization_name", "approval_status",
			"attributes", "hourly_rate", "years_experience", "created_at", "updated_at").
		Values(rec.ID, rec.ActorID, rec.Branch.String(), rec.OrganizationName,
			rec.ApprovalStatus.String(), attrs, rec.HourlyRate, rec.YearsExperience, now, now).
		Suffix("ON CONFLICT (actor_id) DO UPDATE SET updated_at = EXCLUDED.updated_at").
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "mentor_record", rec.ID)
	}

	created, _, err := scanRecord(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "mentor_record", rec.ID)
	}
	return created, nil
}

// ListPending returns all records awaiting review, oldest first, plus the IDs
// of rows whose attribute bag failed to decode. Malformed rows are excluded
// from the result, never an error.
func (r *Repo) ListPending(ctx context.Context) ([]*domain.MentorRecord, []uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"approval_status": domain.ApprovalPending.String()}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build list pending: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("list pending mentor_records: %w", err)
	}
	defer rows.Close()

	var (
		records   []*domain.MentorRecord
		malformed []uuid.UUID
	)
	for rows.Next() {
		rec, bagBroken, err := scanRecord(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("scan mentor_record: %w", err)
		}
		if bagBroken {
			malformed = append(malformed, rec.ID)
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate mentor_records: %w", err)
	}

	return records, malformed, nil
}

// UpdateStatus applies an approval decision as a compare-and-swap on
// (id, version). The full attribute bag is rewritten so sibling keys are
// preserved. Zero rows matched means a concurrent writer won; the caller
// already proved the row exists, so that maps to domain.ErrConflict.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApprovalStatus, attrs domain.AttributeBag, expectedVersion int) (*domain.MentorRecord, error) {
	return r.casUpdate(ctx, id, expectedVersion, map[string]any{
		"approval_status": status.String(),
	}, attrs)
}

// UpdateProfile applies mentor self-edits (rate, experience, organization
// name, bag extras) with the same compare-and-swap discipline.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, rate, years *int, orgName *string, attrs domain.AttributeBag, expectedVersion int) (*domain.MentorRecord, error) {
	sets := map[string]any{}
	if rate != nil {
		sets["hourly_rate"] = *rate
	}
	if years != nil {
		sets["years_experience"] = *years
	}
	if orgName != nil {
		sets["organization_name"] = *orgName
	}
	return r.casUpdate(ctx, id, expectedVersion, sets, attrs)
}

func (r *Repo) casUpdate(ctx context.Context, id uuid.UUID, expectedVersion int, sets map[string]any, attrs domain.AttributeBag) (*domain.MentorRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	encoded, err := encodeBag(attrs)
	if err != nil {
		return nil, fmt.Errorf("encode attributes: %w", err)
	}

	update := postgres.Builder().
		Update(table).
		Set("attributes", encoded).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id, "version": expectedVersion}).
		Suffix("RETURNING " + joinColumns())
	for col, val := range sets {
		update = update.Set(col, val)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "mentor_record", id)
	}

	rec, _, err := scanRecord(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("mentor_record %s: concurrent update: %w", id, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "mentor_record", id)
	}
	return rec, nil
}

// ListActive returns active mentors for the public directory, optionally
// filtered by skill and a maximum hourly rate.
func (r *Repo) ListActive(ctx context.Context, skill *string, maxRate *int, limit, offset int) ([]*domain.MentorRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := postgres.Builder().
		Select(prefixed("m", columns)...).
		From(table + " m").
		Where(squirrel.Eq{"m.approval_status": domain.ApprovalActive.String()}).
		OrderBy("m.created_at ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if skill != nil {
		sel = sel.Join("mentor_expertise e ON e.mentor_id = m.id").
			Where(squirrel.Eq{"e.skill": *skill})
	}
	if maxRate != nil {
		sel = sel.Where(squirrel.LtOrEq{"m.hourly_rate": *maxRate})
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list active: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list active mentor_records: %w", err)
	}
	defer rows.Close()

	var records []*domain.MentorRecord
	for rows.Next() {
		rec, _, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mentor_record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mentor_records: %w", err)
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

type row interface {
	Scan(dest ...any) error
}

// scanRecord decodes one mentor_records row. bagBroken reports that the
// attribute bag was not a JSON object; the record is returned anyway (with a
// nil bag) so callers can log its ID.
func scanRecord(r row) (rec *domain.MentorRecord, bagBroken bool, err error) {
	var (
		out    domain.MentorRecord
		branch string
		status string
		raw    []byte
	)
	err = r.Scan(
		&out.ID, &out.ActorID, &branch, &out.OrganizationName, &status,
		&raw, &out.HourlyRate, &out.YearsExperience, &out.Version,
		&out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, false, err
	}
	out.Branch = domain.MentorBranch(branch)
	out.ApprovalStatus = domain.ApprovalStatus(status)

	bag, bagErr := decodeBag(raw)
	if bagErr != nil {
		return &out, true, nil
	}
	out.Attributes = bag
	return &out, false, nil
}

func encodeBag(bag domain.AttributeBag) ([]byte, error) {
	if bag == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(bag)
}

func decodeBag(raw []byte) (domain.AttributeBag, error) {
	if len(raw) == 0 {
		return domain.AttributeBag{}, nil
	}
	var bag domain.AttributeBag
	if err := json.Unmarshal(raw, &bag); err != nil {
		return nil, err
	}
	return bag, nil
}

func joinColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}
