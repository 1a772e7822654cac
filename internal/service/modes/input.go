package modes

import (
	"math"

	"github.com/heartmarshall/studyset-backend/internal/domain"
)

const (
	maxAnswerLength = 1000
	// maxQuestionSeconds bounds the time reported for a single test question.
	maxQuestionSeconds = 24 * 60 * 60
)

// TestConfig describes how a test is generated. Zero values fall back to
// defaults: the configured question count, both directions, every question type.
type TestConfig struct {
	MaxQuestions   int
	AnswerWith     domain.AnswerWith
	QuestionTypes  []domain.QuestionType
	TimeLimit      *int // seconds
	RandomizeOrder bool
}

func (c TestConfig) withDefaults(l Limits) TestConfig {
	if c.MaxQuestions == 0 {
		c.MaxQuestions = l.DefaultTestQuestions
	}
	if c.AnswerWith == "" {
		c.AnswerWith = domain.AnswerWithBoth
	}
	if len(c.QuestionTypes) == 0 {
		c.QuestionTypes = []domain.QuestionType{
			domain.QuestionTypeMultipleChoice,
			domain.QuestionTypeWritten,
			domain.QuestionTypeTrueFalse,
		}
	} else {
		seen := make(map[domain.QuestionType]bool, len(c.QuestionTypes))
		types := make([]domain.QuestionType, 0, len(c.QuestionTypes))
		for _, qt := range c.QuestionTypes {
			if !seen[qt] {
				seen[qt] = true
				types = append(types, qt)
			}
		}
		c.QuestionTypes = types
	}
	return c
}

// Validate checks all fields and collects all errors.
func (c TestConfig) Validate(l Limits) error {
	var errs []domain.FieldError

	if c.MaxQuestions < 1 || c.MaxQuestions > l.MaxTestQuestions {
		errs = append(errs, domain.FieldError{Field: "max_questions", Message: "out of range"})
	}
	if !c.AnswerWith.IsValid() {
		errs = append(errs, domain.FieldError{Field: "answer_with", Message: "must be term, definition or both"})
	}
	for _, qt := range c.QuestionTypes {
		if !qt.IsValid() {
			errs = append(errs, domain.FieldError{Field: "question_types", Message: "unknown question type " + string(qt)})
			break
		}
	}
	if c.TimeLimit != nil && *c.TimeLimit <= 0 {
		errs = append(errs, domain.FieldError{Field: "time_limit", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// TestAnswer is one submitted answer of a test.
type TestAnswer struct {
	QuestionID       int64
	Answer           string
	TimeSpentSeconds *int
}

// MoveInput is one attempt to pair two match cards.
type MoveInput struct {
	FirstCardID      string
	SecondCardID     string
	TimeSpentSeconds *float64
}

// GravityAnswerInput is one typed answer for a falling term.
type GravityAnswerInput struct {
	TermID  int64
	Answer  string
	Seconds float64
}

// Validate checks all fields and collects all errors.
func (i GravityAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.TermID <= 0 {
		errs = append(errs, domain.FieldError{Field: "term_id", Message: "required"})
	}
	if !validSeconds(i.Seconds) {
		errs = append(errs, domain.FieldError{Field: "seconds", Message: "must be a non-negative number"})
	}
	if len(i.Answer) > maxAnswerLength {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// WriteAnswerInput is one typed answer in write mode.
type WriteAnswerInput struct {
	QuestionID   string
	Answer       string
	ResponseTime *float64
}

// Validate checks all fields and collects all errors.
func (i WriteAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestionID == "" {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if len(i.Answer) > maxAnswerLength {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "too long"})
	}
	if i.ResponseTime != nil && !validSeconds(*i.ResponseTime) {
		errs = append(errs, domain.FieldError{Field: "response_time", Message: "must be a non-negative number"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LearnAnswerInput is one answer in a learn run.
type LearnAnswerInput struct {
	TermID       int64
	Type         domain.QuestionType
	Answer       string
	ResponseTime *float64
}

// Validate checks all fields and collects all errors.
func (i LearnAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.TermID <= 0 {
		errs = append(errs, domain.FieldError{Field: "term_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "question_type", Message: "unknown question type"})
	}
	if len(i.Answer) > maxAnswerLength {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "too long"})
	}
	if i.ResponseTime != nil && !validSeconds(*i.ResponseTime) {
		errs = append(errs, domain.FieldError{Field: "response_time", Message: "must be a non-negative number"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validSeconds(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
