// Package quiz persists generated tests and their questions using PostgreSQL.
package quiz

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studyset-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyset-backend/internal/domain"
)

// Repo provides test persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quiz repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const createTestSQL = `
INSERT INTO test_sessions (study_session_id, max_questions, answer_with, question_types,
                           time_limit, randomize_order, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`

const createQuestionSQL = `
INSERT INTO test_questions (test_session_id, term_id, question_type, prompt,
                            correct_answer, options, position)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

const getTestSQL = `
SELECT t.id, t.study_session_id, s.study_set_id, t.max_questions, t.answer_with,
       t.question_types, t.time_limit, t.randomize_order, t.created_at
FROM test_sessions t
JOIN study_sessions s ON s.id = t.study_session_id
WHERE t.id = $1 AND s.user_id = $2`

const listQuestionsSQL = `
SELECT id, test_session_id, term_id, question_type, prompt, correct_answer, options,
       user_answer, is_correct, points_earned, time_spent_seconds, position
FROM test_questions
WHERE test_session_id = $1
ORDER BY position, id`

// saveAnswersSQL only touches questions that were never graded, so a second
// submission updates nothing.
const saveAnswersSQL = `
UPDATE test_questions AS q
SET user_answer = a.user_answer,
    is_correct = a.is_correct,
    points_earned = a.points_earned,
    time_spent_seconds = a.time_spent_seconds
FROM unnest($2::bigint[], $3::text[], $4::boolean[], $5::float8[], $6::int[])
     AS a(id, user_answer, is_correct, points_earned, time_spent_seconds)
WHERE q.id = a.id AND q.test_session_id = $1 AND q.is_correct IS NULL`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the test and all its questions. Call inside RunInTx so that
// a failed question insert leaves no half-built test behind.
func (r *Repo) Create(ctx context.Context, ts *domain.TestSession) (*domain.TestSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	types := make([]string, len(ts.QuestionTypes))
	for i, qt := range ts.QuestionTypes {
		types[i] = string(qt)
	}

	out := *ts
	err := querier.QueryRow(ctx, createTestSQL,
		ts.SessionID,
		ts.MaxQuestions,
		string(ts.AnswerWith),
		types,
		ts.TimeLimit,
		ts.RandomizeOrder,
		ts.CreatedAt.UTC().Truncate(time.Microsecond),
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "test session", ts.SessionID)
	}

	out.Questions = make([]domain.TestQuestion, len(ts.Questions))
	copy(out.Questions, ts.Questions)
	if len(out.Questions) == 0 {
		return &out, nil
	}

	batch := &pgx.Batch{}
	for i := range out.Questions {
		q := &out.Questions[i]
		q.TestSessionID = out.ID
		options := q.Options
		if options == nil {
			options = []string{}
		}
		batch.Queue(createQuestionSQL,
			out.ID, q.TermID, string(q.Type), q.Prompt, q.CorrectAnswer, options, q.Position,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&q.ID)
		})
	}

	if err := querier.SendBatch(ctx, batch).Close(); err != nil {
		return nil, postgres.MapError(err, "test", out.ID)
	}

	return &out, nil
}

// SaveAnswers stores the graded answers of a test in one statement.
// Returns domain.ErrConflict when the questions were already graded.
func (r *Repo) SaveAnswers(ctx context.Context, testID int64, questions []domain.TestQuestion) error {
	if len(questions) == 0 {
		return nil
	}

	var (
		ids     = make([]int64, len(questions))
		answers = make([]*string, len(questions))
		correct = make([]*bool, len(questions))
		points  = make([]*float64, len(questions))
		spent   = make([]*int32, len(questions))
	)
	for i, q := range questions {
		ids[i] = q.ID
		answers[i] = q.UserAnswer
		correct[i] = q.IsCorrect
		points[i] = q.PointsEarned
		if q.TimeSpentSeconds != nil {
			v := int32(min(*q.TimeSpentSeconds, math.MaxInt32))
			spent[i] = &v
		}
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, saveAnswersSQL, testID, ids, answers, correct, points, spent)
	if err != nil {
		return postgres.MapError(err, "test", testID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("test %d already submitted: %w", testID, domain.ErrConflict)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a test with its questions in position order.
// Returns domain.ErrNotFound if the test does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, testID int64) (*domain.TestSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		ts         domain.TestSession
		answerWith string
		types      []string
	)
	err := querier.QueryRow(ctx, getTestSQL, testID, userID).Scan(
		&ts.ID, &ts.SessionID, &ts.StudySetID, &ts.MaxQuestions, &answerWith,
		&types, &ts.TimeLimit, &ts.RandomizeOrder, &ts.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "test", testID)
	}
	ts.AnswerWith = domain.AnswerWith(answerWith)
	ts.CreatedAt = ts.CreatedAt.UTC()
	ts.QuestionTypes = make([]domain.QuestionType, len(types))
	for i, t := range types {
		ts.QuestionTypes[i] = domain.QuestionType(t)
	}

	rows, err := querier.Query(ctx, listQuestionsSQL, testID)
	if err != nil {
		return nil, fmt.Errorf("list test_questions: %w", err)
	}
	defer rows.Close()

	ts.Questions = []domain.TestQuestion{}
	for rows.Next() {
		var (
			q  domain.TestQuestion
			qt string
		)
		if err := rows.Scan(
			&q.ID, &q.TestSessionID, &q.TermID, &qt, &q.Prompt, &q.CorrectAnswer, &q.Options,
			&q.UserAnswer, &q.IsCorrect, &q.PointsEarned, &q.TimeSpentSeconds, &q.Position,
		); err != nil {
			return nil, fmt.Errorf("scan test_question: %w", err)
		}
		q.Type = domain.QuestionType(qt)
		ts.Questions = append(ts.Questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list test_questions: %w", err)
	}

	return &ts, nil
}
