package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/studyset-backend/internal/domain"
	"github.com/heartmarshall/studyset-backend/internal/service/study/srs"
)

// RecordAnswer applies one graded answer to the user's progress on a term and
// reschedules its next review. The progress row is created on first answer.
func (s *Service) RecordAnswer(ctx context.Context, input RecordAnswerInput) (*domain.TermProgress, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The term must exist and belong to the set, otherwise nothing is written.
	if _, err := s.terms.GetByID(ctx, input.StudySetID, input.TermID); err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}

	now := s.clock.Now()
	var (
		updated   *domain.TermProgress
		prevLevel domain.FamiliarityLevel
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.progress.Ensure(txCtx, input.UserID, input.StudySetID, input.TermID); err != nil {
			return fmt.Errorf("ensure progress: %w", err)
		}

		current, err := s.progress.GetForUpdate(txCtx, input.UserID, input.StudySetID, input.TermID)
		if err != nil {
			return fmt.Errorf("lock progress: %w", err)
		}

		prevLevel = current.Level()
		applyAnswer(current, input.Correct, now, s.policy)

		updated, err = s.progress.Update(txCtx, current)
		if err != nil {
			return fmt.Errorf("update progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}

	attrs := []any{
		slog.Int64("user_id", input.UserID),
		slog.Int64("study_set_id", input.StudySetID),
		slog.Int64("term_id", input.TermID),
		slog.Bool("correct", input.Correct),
		slog.String("level", updated.Level().String()),
	}
	if input.ResponseTime != nil {
		attrs = append(attrs, slog.Float64("response_time", *input.ResponseTime))
	}
	s.log.InfoContext(ctx, "answer recorded", attrs...)

	if prevLevel != domain.FamiliarityMastered && updated.Level() == domain.FamiliarityMastered {
		s.publishMastered(ctx, updated, now)
	}

	return updated, nil
}

// applyAnswer mutates p in place: counters, streaks, level and schedule.
func applyAnswer(p *domain.TermProgress, correct bool, now time.Time, policy srs.Policy) {
	if correct {
		p.CorrectCount++
		p.CurrentStreak++
		p.LongestStreak = max(p.LongestStreak, p.CurrentStreak)
	} else {
		p.IncorrectCount++
		p.CurrentStreak = 0
	}

	level, delay := policy.Schedule(p.FamiliarityLevel, correct)
	next := now.Add(delay)
	studied := now

	p.FamiliarityLevel = &level
	p.LastStudied = &studied
	p.NextReview = &next
}

// publishMastered emits a mastery notification. Delivery is best effort: the
// answer is already committed, so failures are only logged.
func (s *Service) publishMastered(ctx context.Context, p *domain.TermProgress, now time.Time) {
	if s.notify == nil {
		return
	}

	event := domain.MasteryEvent{
		UserID:     p.UserID,
		StudySetID: p.StudySetID,
		TermID:     p.TermID,
		MasteredAt: now,
	}
	if err := s.notify.TermMastered(ctx, event); err != nil {
		s.log.WarnContext(ctx, "publish term mastered",
			slog.Int64("user_id", p.UserID),
			slog.Int64("term_id", p.TermID),
			slog.String("error", err.Error()),
		)
	}
}
