// Package learn persists adaptive learn runs and their questions using PostgreSQL.
package learn

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studyset-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyset-backend/internal/domain"
)

// Repo provides learn run persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new learn repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const createSQL = `
INSERT INTO learn_sessions (study_session_id, current_difficulty, created_at)
VALUES ($1, $2, $3)
RETURNING id, created_at`

const getByIDSQL = `
SELECT l.id, l.study_session_id, s.study_set_id, l.current_difficulty,
       l.questions_answered, l.correct_answers, l.current_streak, l.created_at
FROM learn_sessions l
JOIN study_sessions s ON s.id = l.study_session_id
WHERE l.id = $1 AND s.user_id = $2`

const addQuestionSQL = `
INSERT INTO learn_questions (learn_session_id, term_id, question_type, difficulty_level,
                             user_answer, is_correct, response_time_seconds, points_earned, asked_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

// Create inserts a new learn run.
func (r *Repo) Create(ctx context.Context, ls *domain.LearnSession) (*domain.LearnSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out := *ls
	err := querier.QueryRow(ctx, createSQL,
		ls.SessionID, ls.CurrentDifficulty, ls.CreatedAt.UTC().Truncate(time.Microsecond),
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "learn session", ls.SessionID)
	}
	out.CreatedAt = out.CreatedAt.UTC()
	return &out, nil
}

// GetByID returns a learn run owned by the user.
// Returns domain.ErrNotFound if the run does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, learnID int64) (*domain.LearnSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var ls domain.LearnSession
	err := querier.QueryRow(ctx, getByIDSQL, learnID, userID).Scan(
		&ls.ID, &ls.SessionID, &ls.StudySetID, &ls.CurrentDifficulty,
		&ls.QuestionsAnswered, &ls.CorrectAnswers, &ls.CurrentStreak, &ls.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "learn", learnID)
	}
	ls.CreatedAt = ls.CreatedAt.UTC()
	return &ls, nil
}

// UpdateState stores the adaptive counters of a run.
func (r *Repo) UpdateState(ctx context.Context, ls *domain.LearnSession) error {
	sql, args, err := psql.Update("learn_sessions").
		Set("current_difficulty", ls.CurrentDifficulty).
		Set("questions_answered", ls.QuestionsAnswered).
		Set("correct_answers", ls.CorrectAnswers).
		Set("current_streak", ls.CurrentStreak).
		Where(squirrel.Eq{"id": ls.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build learn update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "learn", ls.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("learn %d: %w", ls.ID, domain.ErrNotFound)
	}
	return nil
}

// AddQuestion records one answered question of a run.
func (r *Repo) AddQuestion(ctx context.Context, q *domain.LearnQuestion) (*domain.LearnQuestion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out := *q
	out.AskedAt = q.AskedAt.UTC().Truncate(time.Microsecond)
	err := querier.QueryRow(ctx, addQuestionSQL,
		q.LearnSessionID, q.TermID, string(q.Type), q.DifficultyLevel,
		q.UserAnswer, q.IsCorrect, q.ResponseTimeSeconds, q.PointsEarned, out.AskedAt,
	).Scan(&out.ID)
	if err != nil {
		return nil, postgres.MapError(err, "learn", q.LearnSessionID)
	}
	return &out, nil
}
