package modes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/studyset-backend/internal/domain"
	"github.com/heartmarshall/studyset-backend/internal/service/study"
	"github.com/heartmarshall/studyset-backend/internal/service/study/answer"
)

const (
	trueOption  = "true"
	falseOption = "false"
)

// TypeBreakdown counts correct answers for one question type.
type TypeBreakdown struct {
	Total   int
	Correct int
}

// TestResult is the graded outcome of a submitted test.
type TestResult struct {
	TestID         int64
	SessionID      int64
	Score          float64
	TotalQuestions int
	CorrectAnswers int
	Breakdown      map[domain.QuestionType]TypeBreakdown
	ReviewTermIDs  []int64
	Questions      []domain.TestQuestion
}

// CreateTest generates and persists a test over the study set.
func (s *Service) CreateTest(ctx context.Context, studySetID int64, cfg TestConfig) (*domain.TestSession, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults(s.limits)
	if err := cfg.Validate(s.limits); err != nil {
		return nil, err
	}

	terms, err := s.loadTerms(ctx, studySetID)
	if err != nil {
		return nil, err
	}

	picked := terms
	if cfg.RandomizeOrder {
		picked = s.shuffledTerms(terms)
	}
	picked = picked[:min(cfg.MaxQuestions, len(picked))]

	directions := cfg.AnswerWith.Directions()
	questions := make([]domain.TestQuestion, 0, len(picked))
	for i, t := range picked {
		qt := cfg.QuestionTypes[i%len(cfg.QuestionTypes)]
		dir := directions[i%len(directions)]
		questions = append(questions, s.buildQuestion(terms, t, qt, dir, i))
	}

	var created *domain.TestSession
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.engine.StartSession(txCtx, study.StartSessionInput{
			UserID: userID, StudySetID: studySetID, Mode: domain.StudyModeTest,
		})
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}

		created, err = s.quizzes.Create(txCtx, &domain.TestSession{
			SessionID:      session.ID,
			StudySetID:     studySetID,
			MaxQuestions:   cfg.MaxQuestions,
			AnswerWith:     cfg.AnswerWith,
			QuestionTypes:  cfg.QuestionTypes,
			TimeLimit:      cfg.TimeLimit,
			RandomizeOrder: cfg.RandomizeOrder,
			CreatedAt:      s.clock.Now(),
			Questions:      questions,
		})
		if err != nil {
			return fmt.Errorf("create test: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "test created",
		slog.Int64("user_id", userID),
		slog.Int64("test_id", created.ID),
		slog.Int("questions", len(created.Questions)),
	)

	return created, nil
}

func (s *Service) buildQuestion(terms []domain.Term, t domain.Term, qt domain.QuestionType, dir domain.Direction, position int) domain.TestQuestion {
	prompt, expected := sides(t, dir)
	q := domain.TestQuestion{
		TermID:        t.ID,
		Type:          qt,
		Prompt:        prompt,
		CorrectAnswer: expected,
		Position:      position,
	}

	switch qt {
	case domain.QuestionTypeMultipleChoice:
		q.Options = s.choiceOptions(terms, t, dir)
	case domain.QuestionTypeTrueFalse:
		shown := expected
		q.CorrectAnswer = trueOption
		if wrong := s.distractors(terms, t, dir, 1); len(wrong) == 1 && s.intN(2) == 0 {
			shown = wrong[0]
			q.CorrectAnswer = falseOption
		}
		q.Prompt = prompt + " = " + shown
		q.Options = []string{trueOption, falseOption}
	}
	return q
}

// GetTest returns a test owned by the current user.
func (s *Service) GetTest(ctx context.Context, testID int64) (*domain.TestSession, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	ts, err := s.quizzes.GetByID(ctx, userID, testID)
	if err != nil {
		return nil, fmt.Errorf("get test: %w", err)
	}
	return ts, nil
}

// SubmitTest grades a test in one pass. Answers to unknown questions are
// skipped; malformed answers count as incorrect. The graded answers, the
// engine updates for every answered question and the session completion are
// written in one transaction, so a failed submission can be retried.
func (s *Service) SubmitTest(ctx context.Context, testID int64, answers []TestAnswer, totalTimeSeconds int) (*TestResult, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if totalTimeSeconds < 0 {
		return nil, domain.NewValidationError("total_time", "must be non-negative")
	}

	ts, err := s.quizzes.GetByID(ctx, userID, testID)
	if err != nil {
		return nil, fmt.Errorf("get test: %w", err)
	}
	if ts.IsSubmitted() {
		return nil, fmt.Errorf("test %d already submitted: %w", testID, domain.ErrConflict)
	}

	byID := make(map[int64]int, len(ts.Questions))
	for i, q := range ts.Questions {
		byID[q.ID] = i
	}

	answered := make(map[int64]bool, len(answers))
	for _, a := range answers {
		idx, ok := byID[a.QuestionID]
		if !ok {
			s.log.DebugContext(ctx, "unknown test question skipped",
				slog.Int64("test_id", testID), slog.Int64("question_id", a.QuestionID))
			continue
		}
		if answered[a.QuestionID] {
			continue
		}
		answered[a.QuestionID] = true

		q := &ts.Questions[idx]
		userAnswer := a.Answer
		q.UserAnswer = &userAnswer
		if a.TimeSpentSeconds != nil && *a.TimeSpentSeconds >= 0 && *a.TimeSpentSeconds <= maxQuestionSeconds {
			q.TimeSpentSeconds = a.TimeSpentSeconds
		}

		verdict := answer.Verdict{}
		if a.wellFormed() {
			verdict = answer.GradeByQuestionType(q.Type, a.Answer, q.CorrectAnswer)
		}
		q.IsCorrect = &verdict.Correct
		q.PointsEarned = &verdict.Score
	}

	for i := range ts.Questions {
		q := &ts.Questions[i]
		if q.IsCorrect == nil {
			wrong, zero := false, 0.0
			q.IsCorrect = &wrong
			q.PointsEarned = &zero
		}
	}

	result := gradeTest(ts)

	score := sessionScore(result.Score)
	total, correct, spent := result.TotalQuestions, result.CorrectAnswers, totalTimeSeconds
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.quizzes.SaveAnswers(txCtx, testID, ts.Questions); err != nil {
			return fmt.Errorf("save answers: %w", err)
		}

		for _, q := range ts.Questions {
			if q.UserAnswer == nil {
				continue
			}
			var rt *float64
			if q.TimeSpentSeconds != nil {
				v := float64(*q.TimeSpentSeconds)
				rt = &v
			}
			_, err := s.recordAnswer(txCtx, userID, ts.StudySetID, q.TermID, *q.IsCorrect, rt)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				// The term was removed from the set after the test was generated.
				s.log.WarnContext(ctx, "test answer not recorded",
					slog.Int64("test_id", testID),
					slog.Int64("term_id", q.TermID),
					slog.String("error", err.Error()),
				)
			case err != nil:
				return err
			}
		}

		if _, err := s.engine.CompleteSession(txCtx, userID, ts.SessionID, domain.SessionUpdate{
			Score:            &score,
			TotalQuestions:   &total,
			CorrectAnswers:   &correct,
			TimeSpentSeconds: &spent,
		}); err != nil {
			return fmt.Errorf("complete session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "test submitted",
		slog.Int64("user_id", userID),
		slog.Int64("test_id", testID),
		slog.Float64("score", result.Score),
	)

	return result, nil
}

// gradeTest aggregates the graded questions. Unanswered questions count as
// incorrect and are suggested for review.
func gradeTest(ts *domain.TestSession) *TestResult {
	res := &TestResult{
		TestID:         ts.ID,
		SessionID:      ts.SessionID,
		TotalQuestions: len(ts.Questions),
		Breakdown:      make(map[domain.QuestionType]TypeBreakdown),
		Questions:      ts.Questions,
	}

	var points float64
	for _, q := range ts.Questions {
		b := res.Breakdown[q.Type]
		b.Total++
		if q.IsCorrect != nil && *q.IsCorrect {
			b.Correct++
			res.CorrectAnswers++
		} else {
			res.ReviewTermIDs = append(res.ReviewTermIDs, q.TermID)
		}
		if q.PointsEarned != nil {
			points += *q.PointsEarned
		}
		res.Breakdown[q.Type] = b
	}

	slices.Sort(res.ReviewTermIDs)
	res.ReviewTermIDs = slices.Compact(res.ReviewTermIDs)

	if res.TotalQuestions > 0 {
		res.Score = roundTo2(100 * points / float64(res.TotalQuestions))
	}
	return res
}

// wellFormed rejects answers that cannot be graded.
func (a TestAnswer) wellFormed() bool {
	if a.TimeSpentSeconds != nil && *a.TimeSpentSeconds < 0 {
		return false
	}
	if a.TimeSpentSeconds != nil && *a.TimeSpentSeconds > maxQuestionSeconds {
		return false
	}
	return strings.TrimSpace(a.Answer) != "" && len(a.Answer) <= maxAnswerLength
}
