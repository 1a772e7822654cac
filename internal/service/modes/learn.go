package modes

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/studyset-backend/internal/domain"
	"github.com/heartmarshall/studyset-backend/internal/service/study"
	"github.com/heartmarshall/studyset-backend/internal/service/study/answer"
)

// LearnPrompt is the next question of a learn run. The prompt shows the
// definition and expects the term.
type LearnPrompt struct {
	LearnSessionID int64
	TermID         int64
	Type           domain.QuestionType
	Prompt         string
	Options        []string
	Difficulty     int
}

// LearnAnswerResult is the outcome of one learn answer.
type LearnAnswerResult struct {
	Correct       bool
	Points        int
	CorrectAnswer string
	Session       domain.LearnSession
	Progress      *domain.TermProgress
}

// CreateLearn starts an adaptive learn run over the study set.
func (s *Service) CreateLearn(ctx context.Context, studySetID int64) (*domain.LearnSession, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.loadTerms(ctx, studySetID); err != nil {
		return nil, err
	}

	var created *domain.LearnSession
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.engine.StartSession(txCtx, study.StartSessionInput{
			UserID: userID, StudySetID: studySetID, Mode: domain.StudyModeLearn,
		})
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}

		created, err = s.learn.Create(txCtx, &domain.LearnSession{
			SessionID:         session.ID,
			StudySetID:        studySetID,
			CurrentDifficulty: minDifficulty,
			CreatedAt:         s.clock.Now(),
		})
		if err != nil {
			return fmt.Errorf("create learn: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "learn created",
		slog.Int64("user_id", userID),
		slog.Int64("learn_id", created.ID),
	)

	return created, nil
}

// NextLearnQuestion picks the due term the user knows least, ties broken by
// fewest correct answers then set order. When nothing is due every term is a
// candidate. Learning terms are asked as multiple choice, the rest as written.
func (s *Service) NextLearnQuestion(ctx context.Context, learnID int64) (*LearnPrompt, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	ls, err := s.learn.GetByID(ctx, userID, learnID)
	if err != nil {
		return nil, fmt.Errorf("get learn: %w", err)
	}

	terms, err := s.loadTerms(ctx, ls.StudySetID)
	if err != nil {
		return nil, err
	}
	rows, err := s.engine.GetProgress(ctx, userID, ls.StudySetID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	target, level := pickLearnTerm(terms, rows, s.clock.Now())

	prompt := &LearnPrompt{
		LearnSessionID: ls.ID,
		TermID:         target.ID,
		Type:           learnQuestionType(level),
		Prompt:         target.Definition,
		Difficulty:     ls.CurrentDifficulty,
	}
	if prompt.Type == domain.QuestionTypeMultipleChoice {
		prompt.Options = s.choiceOptions(terms, target, domain.DirectionDefinitionToTerm)
	}
	return prompt, nil
}

// AnswerLearn grades a learn answer and adapts the difficulty: three correct
// answers in a row raise it, a wrong answer lowers it.
func (s *Service) AnswerLearn(ctx context.Context, learnID int64, input LearnAnswerInput) (*LearnAnswerResult, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ls, err := s.learn.GetByID(ctx, userID, learnID)
	if err != nil {
		return nil, fmt.Errorf("get learn: %w", err)
	}

	term, err := s.terms.GetByID(ctx, ls.StudySetID, input.TermID)
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}

	verdict := answer.GradeByQuestionType(input.Type, input.Answer, term.Term)
	askedAt := ls.CurrentDifficulty

	points := 0
	ls.QuestionsAnswered++
	if verdict.Correct {
		points = LearnPoints(askedAt)
		ls.CorrectAnswers++
		ls.CurrentStreak++
	} else {
		ls.CurrentStreak = 0
	}
	ls.CurrentDifficulty = nextDifficulty(askedAt, verdict.Correct, ls.CurrentStreak)

	userAnswer := input.Answer
	correct := verdict.Correct
	var progress *domain.TermProgress
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.learn.AddQuestion(txCtx, &domain.LearnQuestion{
			LearnSessionID:      ls.ID,
			TermID:              term.ID,
			Type:                input.Type,
			DifficultyLevel:     askedAt,
			UserAnswer:          &userAnswer,
			IsCorrect:           &correct,
			ResponseTimeSeconds: input.ResponseTime,
			PointsEarned:        points,
			AskedAt:             s.clock.Now(),
		}); err != nil {
			return fmt.Errorf("add learn question: %w", err)
		}
		if err := s.learn.UpdateState(txCtx, ls); err != nil {
			return fmt.Errorf("update learn: %w", err)
		}
		progress, err = s.recordAnswer(txCtx, userID, ls.StudySetID, term.ID, verdict.Correct, input.ResponseTime)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &LearnAnswerResult{
		Correct:       verdict.Correct,
		Points:        points,
		CorrectAnswer: term.Term,
		Session:       *ls,
		Progress:      progress,
	}, nil
}

func learnQuestionType(level domain.FamiliarityLevel) domain.QuestionType {
	if level == domain.FamiliarityLearning {
		return domain.QuestionTypeMultipleChoice
	}
	return domain.QuestionTypeWritten
}

// pickLearnTerm chooses the next term to ask. terms must be non-empty.
func pickLearnTerm(terms []domain.Term, rows []domain.TermProgress, now time.Time) (domain.Term, domain.FamiliarityLevel) {
	byTerm := make(map[int64]*domain.TermProgress, len(rows))
	for i := range rows {
		byTerm[rows[i].TermID] = &rows[i]
	}

	type candidate struct {
		term    domain.Term
		level   domain.FamiliarityLevel
		correct int
	}
	var due, all []candidate
	for _, t := range terms {
		c := candidate{term: t, level: domain.FamiliarityLearning}
		p, seen := byTerm[t.ID]
		if seen {
			c.level = p.Level()
			c.correct = p.CorrectCount
		}
		all = append(all, c)
		if !seen || p.IsDue(now) {
			due = append(due, c)
		}
	}
	if len(due) == 0 {
		due = all
	}

	best := slices.MinFunc(due, func(a, b candidate) int {
		if d := a.level.Rank() - b.level.Rank(); d != 0 {
			return d
		}
		if d := a.correct - b.correct; d != 0 {
			return d
		}
		return a.term.Position - b.term.Position
	})
	return best.term, best.level
}
