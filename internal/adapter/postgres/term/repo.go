// Package term implements read-only access to study set terms using PostgreSQL.
// Terms are owned by the content layer; this service never writes them.
package term

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studyset-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyset-backend/internal/domain"
)

// Repo provides term reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new term repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const termColumns = `id, study_set_id, term, definition, position`

const getByIDSQL = `
SELECT ` + termColumns + `
FROM terms
WHERE id = $1 AND study_set_id = $2`

const listBySetSQL = `
SELECT ` + termColumns + `
FROM terms
WHERE study_set_id = $1
ORDER BY position, id`

const listByIDsSQL = `
SELECT ` + termColumns + `
FROM terms
WHERE id = ANY($1::bigint[])`

const setExistsSQL = `SELECT EXISTS(SELECT 1 FROM study_sets WHERE id = $1)`

// GetByID returns a term of the given set.
// Returns domain.ErrNotFound if the term does not exist or belongs to another set.
func (r *Repo) GetByID(ctx context.Context, studySetID, termID int64) (*domain.Term, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTerm(querier.QueryRow(ctx, getByIDSQL, termID, studySetID))
	if err != nil {
		return nil, postgres.MapError(err, "term", termID)
	}
	return t, nil
}

// ListBySet returns the terms of a set in display order. An unknown set
// yields an empty slice.
func (r *Repo) ListBySet(ctx context.Context, studySetID int64) ([]domain.Term, error) {
	return r.list(ctx, listBySetSQL, studySetID)
}

// ListByIDs returns the terms with the given ids in no particular order.
// Missing ids are silently skipped.
func (r *Repo) ListByIDs(ctx context.Context, ids []int64) ([]domain.Term, error) {
	if len(ids) == 0 {
		return []domain.Term{}, nil
	}
	return r.list(ctx, listByIDsSQL, ids)
}

// SetExists reports whether a study set with the given id exists.
func (r *Repo) SetExists(ctx context.Context, studySetID int64) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, setExistsSQL, studySetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check study_set %d: %w", studySetID, err)
	}
	return exists, nil
}

func (r *Repo) list(ctx context.Context, sql string, arg any) ([]domain.Term, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, arg)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	defer rows.Close()

	terms := []domain.Term{}
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		terms = append(terms, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	return terms, nil
}

func scanTerm(row pgx.Row) (*domain.Term, error) {
	var t domain.Term
	if err := row.Scan(&t.ID, &t.StudySetID, &t.Term, &t.Definition, &t.Position); err != nil {
		return nil, err
	}
	return &t, nil
}
