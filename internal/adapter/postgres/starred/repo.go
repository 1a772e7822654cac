// Package starred stores the terms a user starred for focused flashcard review.
package starred

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studyset-backend/internal/adapter/postgres"
)

// Repo provides starred card persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new starred cards repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const starSQL = `
INSERT INTO starred_cards (user_id, study_set_id, term_id)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, term_id) DO NOTHING`

const unstarSQL = `
DELETE FROM starred_cards
WHERE user_id = $1 AND study_set_id = $2 AND term_id = $3`

const listTermIDsSQL = `
SELECT term_id FROM starred_cards
WHERE user_id = $1 AND study_set_id = $2
ORDER BY term_id`

// Star marks a term. Starring twice is a no-op.
func (r *Repo) Star(ctx context.Context, userID, studySetID, termID int64) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, starSQL, userID, studySetID, termID); err != nil {
		return postgres.MapError(err, "starred term", termID)
	}
	return nil
}

// Unstar removes the mark. Unstarring an unstarred term is a no-op.
func (r *Repo) Unstar(ctx context.Context, userID, studySetID, termID int64) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, unstarSQL, userID, studySetID, termID); err != nil {
		return postgres.MapError(err, "starred term", termID)
	}
	return nil
}

// ListTermIDs returns the starred term ids of the set.
func (r *Repo) ListTermIDs(ctx context.Context, userID, studySetID int64) ([]int64, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listTermIDsSQL, userID, studySetID)
	if err != nil {
		return nil, fmt.Errorf("list starred_cards: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan starred_card: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list starred_cards: %w", err)
	}
	return ids, nil
}
