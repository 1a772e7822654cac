// Package match persists match boards and their moves using PostgreSQL.
package match

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studyset-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyset-backend/internal/domain"
)

// Repo provides match game persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new match repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const createSQL = `
INSERT INTO match_games (study_session_id, pairs_count, selected_terms)
VALUES ($1, $2, $3)
RETURNING id`

const getByIDSQL = `
SELECT g.id, g.study_session_id, s.study_set_id, g.pairs_count, g.selected_terms,
       g.completed_at, g.completion_time_seconds, g.incorrect_matches, g.total_matches,
       COALESCE((SELECT array_agg(m.first_term_id ORDER BY m.first_term_id)
                 FROM match_moves m
                 WHERE m.game_id = g.id AND m.is_match), '{}')
FROM match_games g
JOIN study_sessions s ON s.id = g.study_session_id
WHERE g.id = $1 AND s.user_id = $2`

const addMoveSQL = `
INSERT INTO match_moves (game_id, move_number, first_term_id, second_term_id,
                         is_match, time_spent_seconds, moved_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

// Create inserts a new board.
func (r *Repo) Create(ctx context.Context, g *domain.MatchGame) (*domain.MatchGame, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out := *g
	if err := querier.QueryRow(ctx, createSQL, g.SessionID, g.PairsCount, g.SelectedTerms).Scan(&out.ID); err != nil {
		return nil, postgres.MapError(err, "match session", g.SessionID)
	}
	return &out, nil
}

// GetByID returns a board owned by the user.
// Returns domain.ErrNotFound if the game does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, gameID int64) (*domain.MatchGame, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var g domain.MatchGame
	err := querier.QueryRow(ctx, getByIDSQL, gameID, userID).Scan(
		&g.ID, &g.SessionID, &g.StudySetID, &g.PairsCount, &g.SelectedTerms,
		&g.CompletedAt, &g.CompletionTimeSeconds, &g.IncorrectMatches, &g.TotalMatches,
		&g.MatchedTerms,
	)
	if err != nil {
		return nil, postgres.MapError(err, "match", gameID)
	}
	return &g, nil
}

// AddMove appends a move. Move numbers are unique per game and a term can be
// matched only once, so a concurrent duplicate yields domain.ErrAlreadyExists.
func (r *Repo) AddMove(ctx context.Context, m *domain.MatchMove) (*domain.MatchMove, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out := *m
	out.MovedAt = m.MovedAt.UTC().Truncate(time.Microsecond)
	err := querier.QueryRow(ctx, addMoveSQL,
		m.GameID, m.MoveNumber, m.FirstTermID, m.SecondTermID,
		m.IsMatch, m.TimeSpentSeconds, out.MovedAt,
	).Scan(&out.ID)
	if err != nil {
		return nil, postgres.MapError(err, "match", m.GameID)
	}
	return &out, nil
}

// UpdateCounters stores the running move tallies of an open game.
func (r *Repo) UpdateCounters(ctx context.Context, gameID int64, totalMatches, incorrectMatches int) error {
	return r.update(ctx, gameID, psql.Update("match_games").
		Set("total_matches", totalMatches).
		Set("incorrect_matches", incorrectMatches))
}

// Complete closes an open game. Returns domain.ErrConflict if it was already closed.
func (r *Repo) Complete(ctx context.Context, gameID int64, completionSeconds float64, incorrectMatches int, completedAt time.Time) error {
	return r.update(ctx, gameID, psql.Update("match_games").
		Set("completion_time_seconds", completionSeconds).
		Set("incorrect_matches", incorrectMatches).
		Set("completed_at", completedAt.UTC().Truncate(time.Microsecond)))
}

func (r *Repo) update(ctx context.Context, gameID int64, q squirrel.UpdateBuilder) error {
	sql, args, err := q.Where(squirrel.Eq{"id": gameID, "completed_at": nil}).ToSql()
	if err != nil {
		return fmt.Errorf("build match update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "match", gameID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %d is closed or missing: %w", gameID, domain.ErrConflict)
	}
	return nil
}
