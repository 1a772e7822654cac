package modes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studyset-backend/internal/domain"
	"github.com/heartmarshall/studyset-backend/internal/service/study"
	"github.com/heartmarshall/studyset-backend/internal/service/study/answer"
)

// GravityRound is a new gravity game and the order terms fall in. Each term
// falls showing its definition; the user types the term.
type GravityRound struct {
	Game  domain.GravityGame
	Terms []domain.Term
}

// GravityAnswerResult is the outcome of one typed answer.
type GravityAnswerResult struct {
	Correct bool
	Points  int
	Game    domain.GravityGame
}

// CreateGravity starts a gravity game at the given difficulty (1..5).
func (s *Service) CreateGravity(ctx context.Context, studySetID int64, difficulty int) (*GravityRound, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if difficulty < minDifficulty || difficulty > maxDifficulty {
		return nil, domain.NewValidationError("difficulty", "must be between 1 and 5")
	}

	terms, err := s.loadTerms(ctx, studySetID)
	if err != nil {
		return nil, err
	}

	var game *domain.GravityGame
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.engine.StartSession(txCtx, study.StartSessionInput{
			UserID: userID, StudySetID: studySetID, Mode: domain.StudyModeGravity,
		})
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}

		game, err = s.gravity.Create(txCtx, &domain.GravityGame{
			SessionID:       session.ID,
			StudySetID:      studySetID,
			DifficultyLevel: difficulty,
			SpeedMultiplier: GravitySpeed(difficulty),
			LivesRemaining:  domain.GravityStartingLives,
		})
		if err != nil {
			return fmt.Errorf("create gravity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "gravity created",
		slog.Int64("user_id", userID),
		slog.Int64("game_id", game.ID),
		slog.Int("difficulty", difficulty),
	)

	return &GravityRound{Game: *game, Terms: s.shuffledTerms(terms)}, nil
}

// SubmitGravityAnswer judges a typed answer for a falling term. A correct
// answer destroys the term and scores points; a wrong one costs a life.
func (s *Service) SubmitGravityAnswer(ctx context.Context, gameID int64, input GravityAnswerInput) (*GravityAnswerResult, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	game, err := s.gravity.GetByID(ctx, userID, gameID)
	if err != nil {
		return nil, fmt.Errorf("get gravity: %w", err)
	}
	if game.IsOver() {
		return nil, fmt.Errorf("gravity %d is over: %w", gameID, domain.ErrConflict)
	}

	term, err := s.terms.GetByID(ctx, game.StudySetID, input.TermID)
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}

	res := &GravityAnswerResult{Correct: answer.CheckFuzzy(input.Answer, term.Term)}
	if res.Correct {
		res.Points = GravityPoints(input.Seconds)
		game.Score += res.Points
		game.TermsDestroyed++
	} else {
		game.LivesRemaining--
	}

	now := s.clock.Now()
	userAnswer := input.Answer
	seconds := input.Seconds
	record := &domain.GravityTerm{
		GameID:       gameID,
		TermID:       term.ID,
		AppearedAt:   now.Add(-secondsDuration(seconds)),
		WasDestroyed: res.Correct,
		UserAnswer:   &userAnswer,
	}
	if res.Correct {
		record.TimeToDestroySeconds = &seconds
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.gravity.AddTerm(txCtx, record); err != nil {
			return fmt.Errorf("add gravity term: %w", err)
		}
		if err := s.gravity.UpdateState(txCtx, game); err != nil {
			return fmt.Errorf("update gravity: %w", err)
		}
		if _, err := s.recordAnswer(txCtx, userID, game.StudySetID, term.ID, res.Correct, &seconds); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Game = *game
	return res, nil
}

// CompleteGravity closes the game and completes its session in one transaction.
func (s *Service) CompleteGravity(ctx context.Context, gameID int64, durationSeconds int) (*domain.GravityGame, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if durationSeconds < 0 {
		return nil, domain.NewValidationError("duration", "must be non-negative")
	}

	game, err := s.gravity.GetByID(ctx, userID, gameID)
	if err != nil {
		return nil, fmt.Errorf("get gravity: %w", err)
	}
	if game.CompletedAt != nil {
		return nil, fmt.Errorf("gravity %d already completed: %w", gameID, domain.ErrConflict)
	}

	now := s.clock.Now()
	score := sessionScore(float64(game.Score))
	missed := domain.GravityStartingLives - max(0, game.LivesRemaining)
	total, correct := game.TermsDestroyed+missed, game.TermsDestroyed
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.gravity.Complete(txCtx, gameID, durationSeconds, now); err != nil {
			return fmt.Errorf("complete gravity: %w", err)
		}
		if _, err := s.engine.CompleteSession(txCtx, userID, game.SessionID, domain.SessionUpdate{
			Score:            &score,
			TotalQuestions:   &total,
			CorrectAnswers:   &correct,
			TimeSpentSeconds: &durationSeconds,
			CompletedAt:      &now,
		}); err != nil {
			return fmt.Errorf("complete session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	game.CompletedAt = &now
	game.GameDurationSeconds = &durationSeconds

	s.log.InfoContext(ctx, "gravity completed",
		slog.Int64("user_id", userID),
		slog.Int64("game_id", gameID),
		slog.Int("score", game.Score),
	)

	return game, nil
}
