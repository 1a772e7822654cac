package study

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studyset-backend/internal/domain"
)

// GetProgress returns every progress row the user has in the study set.
func (s *Service) GetProgress(ctx context.Context, userID, studySetID int64) ([]domain.TermProgress, error) {
	if err := validateOwner(userID, studySetID); err != nil {
		return nil, err
	}

	rows, err := s.progress.ListBySet(ctx, userID, studySetID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return rows, nil
}

// GetDueTerms returns the rows whose next review is unset or not in the future.
func (s *Service) GetDueTerms(ctx context.Context, userID, studySetID int64) ([]domain.TermProgress, error) {
	if err := validateOwner(userID, studySetID); err != nil {
		return nil, err
	}

	rows, err := s.progress.ListDue(ctx, userID, studySetID, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("list due progress: %w", err)
	}
	return rows, nil
}

// GetReviewTerms returns due rows joined with the text of their terms.
// Rows whose term has since been removed from the set are skipped.
func (s *Service) GetReviewTerms(ctx context.Context, userID, studySetID int64) ([]domain.ReviewTerm, error) {
	if err := validateOwner(userID, studySetID); err != nil {
		return nil, err
	}

	var (
		due   []domain.TermProgress
		terms []domain.Term
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		due, err = s.progress.ListDue(gctx, userID, studySetID, s.clock.Now())
		if err != nil {
			return fmt.Errorf("list due progress: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		terms, err = s.terms.ListBySet(gctx, studySetID)
		if err != nil {
			return fmt.Errorf("list terms: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Term, len(terms))
	for _, t := range terms {
		byID[t.ID] = t
	}

	out := make([]domain.ReviewTerm, 0, len(due))
	for _, p := range due {
		t, ok := byID[p.TermID]
		if !ok {
			continue
		}
		out = append(out, domain.ReviewTerm{Progress: p, Term: t.Term, Definition: t.Definition})
	}
	return out, nil
}

func validateOwner(userID, studySetID int64) error {
	var errs []domain.FieldError
	if userID <= 0 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if studySetID <= 0 {
		errs = append(errs, domain.FieldError{Field: "study_set_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
