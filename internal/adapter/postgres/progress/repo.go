// Package progress implements the per-term study progress ledger using PostgreSQL.
// Listing queries are built with squirrel; the lock-and-update path uses raw SQL.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studyset-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyset-backend/internal/domain"
)

// Repo provides study progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

var progressColumns = []string{
	"id", "user_id", "study_set_id", "term_id", "familiarity_level",
	"correct_count", "incorrect_count", "current_streak", "longest_streak",
	"last_studied", "next_review",
}

const ensureSQL = `
INSERT INTO study_progress (user_id, study_set_id, term_id)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, study_set_id, term_id) DO NOTHING`

const getForUpdateSQL = `
SELECT id, user_id, study_set_id, term_id, familiarity_level,
       correct_count, incorrect_count, current_streak, longest_streak,
       last_studied, next_review
FROM study_progress
WHERE user_id = $1 AND study_set_id = $2 AND term_id = $3
FOR UPDATE`

const updateSQL = `
UPDATE study_progress
SET familiarity_level = $2,
    correct_count = $3,
    incorrect_count = $4,
    current_streak = $5,
    longest_streak = $6,
    last_studied = $7,
    next_review = $8
WHERE id = $1
RETURNING id, user_id, study_set_id, term_id, familiarity_level,
          correct_count, incorrect_count, current_streak, longest_streak,
          last_studied, next_review`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Ensure creates an empty ledger row for the triple if none exists.
// A foreign key violation means the set or term does not exist.
func (r *Repo) Ensure(ctx context.Context, userID, studySetID, termID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, ensureSQL, userID, studySetID, termID); err != nil {
		return postgres.MapError(err, "study_progress term", termID)
	}
	return nil
}

// GetForUpdate reads the ledger row and locks it until the surrounding
// transaction ends. Must be called inside RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, userID, studySetID, termID int64) (*domain.TermProgress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProgress(querier.QueryRow(ctx, getForUpdateSQL, userID, studySetID, termID))
	if err != nil {
		return nil, postgres.MapError(err, "study_progress term", termID)
	}
	return p, nil
}

// Update overwrites the mutable fields of a ledger row.
func (r *Repo) Update(ctx context.Context, p *domain.TermProgress) (*domain.TermProgress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var level *string
	if p.FamiliarityLevel != nil {
		s := string(*p.FamiliarityLevel)
		level = &s
	}

	row := querier.QueryRow(ctx, updateSQL,
		p.ID,
		level,
		p.CorrectCount,
		p.IncorrectCount,
		p.CurrentStreak,
		p.LongestStreak,
		utcPtr(p.LastStudied),
		utcPtr(p.NextReview),
	)

	updated, err := scanProgress(row)
	if err != nil {
		return nil, postgres.MapError(err, "study_progress", p.ID)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListBySet returns every ledger row of the user for the set, ordered by term id.
func (r *Repo) ListBySet(ctx context.Context, userID, studySetID int64) ([]domain.TermProgress, error) {
	q := psql.Select(progressColumns...).
		From("study_progress").
		Where(squirrel.Eq{"user_id": userID, "study_set_id": studySetID}).
		OrderBy("term_id")

	return r.list(ctx, q)
}

// ListDue returns rows never scheduled or scheduled at or before now,
// unscheduled rows first, then by next_review ascending.
func (r *Repo) ListDue(ctx context.Context, userID, studySetID int64, now time.Time) ([]domain.TermProgress, error) {
	q := psql.Select(progressColumns...).
		From("study_progress").
		Where(squirrel.Eq{"user_id": userID, "study_set_id": studySetID}).
		Where(squirrel.Or{
			squirrel.Eq{"next_review": nil},
			squirrel.LtOrEq{"next_review": now.UTC()},
		}).
		OrderBy("next_review ASC NULLS FIRST", "term_id")

	return r.list(ctx, q)
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder) ([]domain.TermProgress, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build study_progress query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list study_progress: %w", err)
	}
	defer rows.Close()

	out := []domain.TermProgress{}
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan study_progress: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list study_progress: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanProgress(row pgx.Row) (*domain.TermProgress, error) {
	var (
		p     domain.TermProgress
		level *string
	)
	if err := row.Scan(
		&p.ID, &p.UserID, &p.StudySetID, &p.TermID, &level,
		&p.CorrectCount, &p.IncorrectCount, &p.CurrentStreak, &p.LongestStreak,
		&p.LastStudied, &p.NextReview,
	); err != nil {
		return nil, err
	}
	if level != nil {
		l := domain.FamiliarityLevel(*level)
		p.FamiliarityLevel = &l
	}
	p.LastStudied = utcPtr(p.LastStudied)
	p.NextReview = utcPtr(p.NextReview)
	return &p, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC().Truncate(time.Microsecond)
	return &u
}
