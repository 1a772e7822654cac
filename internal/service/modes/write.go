package modes

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/studyset-backend/internal/domain"
	"github.com/heartmarshall/studyset-backend/internal/service/study/answer"
)

// WriteQuestion is one prompt the user answers by typing. IDs have the form
// "<term id>:<direction>".
type WriteQuestion struct {
	ID        string
	TermID    int64
	Direction domain.Direction
	Prompt    string
}

// WriteResult is the outcome of a typed answer.
type WriteResult struct {
	Correct       bool
	Score         float64
	CorrectAnswer string
	Progress      *domain.TermProgress
}

// GetWriteQuestions returns one or two prompts per term, in set order.
func (s *Service) GetWriteQuestions(ctx context.Context, studySetID int64, answerWith domain.AnswerWith) ([]WriteQuestion, error) {
	if _, err := userFromCtx(ctx); err != nil {
		return nil, err
	}
	if answerWith == "" {
		answerWith = domain.AnswerWithTerm
	}
	if !answerWith.IsValid() {
		return nil, domain.NewValidationError("answer_with", "must be term, definition or both")
	}

	terms, err := s.loadTerms(ctx, studySetID)
	if err != nil {
		return nil, err
	}

	directions := answerWith.Directions()
	out := make([]WriteQuestion, 0, len(terms)*len(directions))
	for _, t := range terms {
		for _, dir := range directions {
			prompt, _ := sides(t, dir)
			out = append(out, WriteQuestion{
				ID:        writeQuestionID(t.ID, dir),
				TermID:    t.ID,
				Direction: dir,
				Prompt:    prompt,
			})
		}
	}
	return out, nil
}

// CheckWrite grades a typed answer with fuzzy matching and partial credit and
// records it against the term.
func (s *Service) CheckWrite(ctx context.Context, studySetID int64, input WriteAnswerInput) (*WriteResult, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	termID, dir, err := parseWriteQuestionID(input.QuestionID)
	if err != nil {
		return nil, err
	}

	term, err := s.terms.GetByID(ctx, studySetID, termID)
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}

	_, expected := sides(*term, dir)
	verdict := answer.Grade(input.Answer, expected)

	progress, err := s.recordAnswer(ctx, userID, studySetID, termID, verdict.Correct, input.ResponseTime)
	if err != nil {
		return nil, err
	}

	return &WriteResult{
		Correct:       verdict.Correct,
		Score:         verdict.Score,
		CorrectAnswer: expected,
		Progress:      progress,
	}, nil
}

func writeQuestionID(termID int64, dir domain.Direction) string {
	return strconv.FormatInt(termID, 10) + ":" + string(dir)
}

func parseWriteQuestionID(id string) (int64, domain.Direction, error) {
	raw, dir, ok := strings.Cut(id, ":")
	if !ok {
		return 0, "", domain.NewValidationError("question_id", "malformed question id")
	}
	termID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || termID <= 0 {
		return 0, "", domain.NewValidationError("question_id", "malformed question id")
	}
	switch d := domain.Direction(dir); d {
	case domain.DirectionDefinitionToTerm, domain.DirectionTermToDefinition:
		return termID, d, nil
	}
	return 0, "", domain.NewValidationError("question_id", "unknown direction")
}
