// Package gravity persists gravity games and the terms played in them using PostgreSQL.
package gravity

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studyset-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyset-backend/internal/domain"
)

// Repo provides gravity game persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new gravity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const createSQL = `
INSERT INTO gravity_games (study_session_id, difficulty_level, speed_multiplier,
                           lives_remaining, score, terms_destroyed)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

const getByIDSQL = `
SELECT g.id, g.study_session_id, s.study_set_id, g.difficulty_level, g.speed_multiplier,
       g.lives_remaining, g.score, g.terms_destroyed, g.game_duration_seconds, g.completed_at
FROM gravity_games g
JOIN study_sessions s ON s.id = g.study_session_id
WHERE g.id = $1 AND s.user_id = $2`

const addTermSQL = `
INSERT INTO gravity_terms (game_id, term_id, appeared_at, was_destroyed,
                           time_to_destroy_seconds, user_answer)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

// Create inserts a new game.
func (r *Repo) Create(ctx context.Context, g *domain.GravityGame) (*domain.GravityGame, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out := *g
	err := querier.QueryRow(ctx, createSQL,
		g.SessionID, g.DifficultyLevel, g.SpeedMultiplier, g.LivesRemaining, g.Score, g.TermsDestroyed,
	).Scan(&out.ID)
	if err != nil {
		return nil, postgres.MapError(err, "gravity session", g.SessionID)
	}
	return &out, nil
}

// GetByID returns a game owned by the user.
// Returns domain.ErrNotFound if the game does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, gameID int64) (*domain.GravityGame, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var g domain.GravityGame
	err := querier.QueryRow(ctx, getByIDSQL, gameID, userID).Scan(
		&g.ID, &g.SessionID, &g.StudySetID, &g.DifficultyLevel, &g.SpeedMultiplier,
		&g.LivesRemaining, &g.Score, &g.TermsDestroyed, &g.GameDurationSeconds, &g.CompletedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "gravity", gameID)
	}
	return &g, nil
}

// AddTerm records one falling term.
func (r *Repo) AddTerm(ctx context.Context, t *domain.GravityTerm) (*domain.GravityTerm, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out := *t
	out.AppearedAt = t.AppearedAt.UTC().Truncate(time.Microsecond)
	err := querier.QueryRow(ctx, addTermSQL,
		t.GameID, t.TermID, out.AppearedAt, t.WasDestroyed, t.TimeToDestroySeconds, t.UserAnswer,
	).Scan(&out.ID)
	if err != nil {
		return nil, postgres.MapError(err, "gravity", t.GameID)
	}
	return &out, nil
}

// UpdateState stores score, lives and pace of an open game.
func (r *Repo) UpdateState(ctx context.Context, g *domain.GravityGame) error {
	return r.update(ctx, g.ID, psql.Update("gravity_games").
		Set("difficulty_level", g.DifficultyLevel).
		Set("speed_multiplier", g.SpeedMultiplier).
		Set("lives_remaining", max(g.LivesRemaining, 0)).
		Set("score", g.Score).
		Set("terms_destroyed", g.TermsDestroyed))
}

// Complete closes an open game. Returns domain.ErrConflict if it was already closed.
func (r *Repo) Complete(ctx context.Context, gameID int64, durationSeconds int, completedAt time.Time) error {
	return r.update(ctx, gameID, psql.Update("gravity_games").
		Set("game_duration_seconds", durationSeconds).
		Set("completed_at", completedAt.UTC().Truncate(time.Microsecond)))
}

func (r *Repo) update(ctx context.Context, gameID int64, q squirrel.UpdateBuilder) error {
	sql, args, err := q.Where(squirrel.Eq{"id": gameID, "completed_at": nil}).ToSql()
	if err != nil {
		return fmt.Errorf("build gravity update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "gravity", gameID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("gravity %d is closed or missing: %w", gameID, domain.ErrConflict)
	}
	return nil
}
