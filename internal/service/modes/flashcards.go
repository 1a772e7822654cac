package modes

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studyset-backend/internal/domain"
)

// Flashcard is a term with the user's progress and star flag.
type Flashcard struct {
	Term     domain.Term
	Progress *domain.TermProgress
	Starred  bool
}

// GetFlashcards returns the set's cards in order. Terms, progress and stars
// are loaded concurrently.
func (s *Service) GetFlashcards(ctx context.Context, studySetID int64, starredOnly bool) ([]Flashcard, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var (
		terms   []domain.Term
		rows    []domain.TermProgress
		starred []int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		terms, err = s.loadTerms(gctx, studySetID)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.engine.GetProgress(gctx, userID, studySetID)
		if err != nil {
			return fmt.Errorf("get progress: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		starred, err = s.starred.ListTermIDs(gctx, userID, studySetID)
		if err != nil {
			return fmt.Errorf("list starred: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byTerm := make(map[int64]*domain.TermProgress, len(rows))
	for i := range rows {
		byTerm[rows[i].TermID] = &rows[i]
	}
	stars := make(map[int64]bool, len(starred))
	for _, id := range starred {
		stars[id] = true
	}

	cards := make([]Flashcard, 0, len(terms))
	for _, t := range terms {
		if starredOnly && !stars[t.ID] {
			continue
		}
		cards = append(cards, Flashcard{Term: t, Progress: byTerm[t.ID], Starred: stars[t.ID]})
	}
	return cards, nil
}

// SetStar stars or unstars a term. Both directions are idempotent.
func (s *Service) SetStar(ctx context.Context, studySetID, termID int64, starred bool) error {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return err
	}

	if _, err := s.terms.GetByID(ctx, studySetID, termID); err != nil {
		return fmt.Errorf("get term: %w", err)
	}

	if starred {
		err = s.starred.Star(ctx, userID, studySetID, termID)
	} else {
		err = s.starred.Unstar(ctx, userID, studySetID, termID)
	}
	if err != nil {
		return fmt.Errorf("set star: %w", err)
	}

	s.log.InfoContext(ctx, "star updated",
		slog.Int64("user_id", userID),
		slog.Int64("term_id", termID),
		slog.Bool("starred", starred),
	)
	return nil
}

// FlipCard records a self-graded flashcard: known counts as correct.
func (s *Service) FlipCard(ctx context.Context, studySetID, termID int64, known bool) (*domain.TermProgress, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.recordAnswer(ctx, userID, studySetID, termID, known, nil)
}
