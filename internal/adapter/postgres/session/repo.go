// Package session implements the StudySession repository using PostgreSQL.
// Partial updates are built with squirrel so that only the supplied columns
// are written.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studyset-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyset-backend/internal/domain"
)

// Repo provides study session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, study_set_id, mode, started_at, completed_at,
score, total_questions, correct_answers, time_spent_seconds`

const createSQL = `
INSERT INTO study_sessions (user_id, study_set_id, mode, started_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE id = $1 AND user_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by primary key filtered by user_id.
// Returns domain.ErrNotFound if the session does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID int64) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	session, err := scanSession(querier.QueryRow(ctx, getByIDSQL, sessionID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}

	return session, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new study session and returns the persisted row.
func (r *Repo) Create(ctx context.Context, session *domain.StudySession) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	startedAt := session.StartedAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		session.UserID,
		session.StudySetID,
		string(session.Mode),
		startedAt,
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session study_set", session.StudySetID)
	}

	return created, nil
}

// Update writes the non-nil fields of upd. No row is ever inserted: an
// unknown session, or one owned by another user, yields domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, userID, sessionID int64, upd domain.SessionUpdate) (*domain.StudySession, error) {
	if upd.IsEmpty() {
		return r.GetByID(ctx, userID, sessionID)
	}

	q := psql.Update("study_sessions").
		Where(squirrel.Eq{"id": sessionID, "user_id": userID}).
		Suffix("RETURNING " + sessionColumns)

	if upd.Score != nil {
		q = q.Set("score", *upd.Score)
	}
	if upd.TotalQuestions != nil {
		q = q.Set("total_questions", *upd.TotalQuestions)
	}
	if upd.CorrectAnswers != nil {
		q = q.Set("correct_answers", *upd.CorrectAnswers)
	}
	if upd.TimeSpentSeconds != nil {
		q = q.Set("time_spent_seconds", *upd.TimeSpentSeconds)
	}
	if upd.CompletedAt != nil {
		q = q.Set("completed_at", upd.CompletedAt.UTC().Truncate(time.Microsecond))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build session update: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	updated, err := scanSession(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("session %d: %w", sessionID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "session", sessionID)
	}

	return updated, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanSession scans a single session row from pgx.Row.
func scanSession(row pgx.Row) (*domain.StudySession, error) {
	var (
		s    domain.StudySession
		mode string
	)

	if err := row.Scan(
		&s.ID, &s.UserID, &s.StudySetID, &mode, &s.StartedAt, &s.CompletedAt,
		&s.Score, &s.TotalQuestions, &s.CorrectAnswers, &s.TimeSpentSeconds,
	); err != nil {
		return nil, err
	}

	s.Mode = domain.StudyMode(mode)
	s.StartedAt = s.StartedAt.UTC()
	if s.CompletedAt != nil {
		t := s.CompletedAt.UTC()
		s.CompletedAt = &t
	}

	return &s, nil
}
