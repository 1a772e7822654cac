package study

import (
	"math"

	"github.com/heartmarshall/studyset-backend/internal/domain"
)

// MaxSessionScore is the largest score a session can hold.
const MaxSessionScore = 999.99

// RecordAnswerInput holds one graded answer for one term.
type RecordAnswerInput struct {
	UserID       int64
	StudySetID   int64
	TermID       int64
	Correct      bool
	ResponseTime *float64 // seconds
	Difficulty   *int     // 1..5, informational
}

// Validate checks all fields and collects all errors.
func (i *RecordAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.StudySetID <= 0 {
		errs = append(errs, domain.FieldError{Field: "study_set_id", Message: "required"})
	}
	if i.TermID <= 0 {
		errs = append(errs, domain.FieldError{Field: "term_id", Message: "required"})
	}
	if i.ResponseTime != nil {
		rt := *i.ResponseTime
		if math.IsNaN(rt) || math.IsInf(rt, 0) || rt < 0 {
			errs = append(errs, domain.FieldError{Field: "response_time", Message: "must be a non-negative number"})
		}
	}
	if i.Difficulty != nil && (*i.Difficulty < 1 || *i.Difficulty > 5) {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StartSessionInput holds the parameters for opening a study session.
type StartSessionInput struct {
	UserID     int64
	StudySetID int64
	Mode       domain.StudyMode
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.StudySetID <= 0 {
		errs = append(errs, domain.FieldError{Field: "study_set_id", Message: "required"})
	}
	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "unknown study mode"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateSessionUpdate checks the fields present in a partial session update.
func validateSessionUpdate(u domain.SessionUpdate) error {
	var errs []domain.FieldError

	if u.Score != nil {
		s := *u.Score
		if math.IsNaN(s) || s < 0 || s > MaxSessionScore {
			errs = append(errs, domain.FieldError{Field: "score", Message: "must be between 0 and 999.99"})
		}
	}
	if u.TotalQuestions != nil && *u.TotalQuestions < 0 {
		errs = append(errs, domain.FieldError{Field: "total_questions", Message: "must be non-negative"})
	}
	if u.CorrectAnswers != nil && *u.CorrectAnswers < 0 {
		errs = append(errs, domain.FieldError{Field: "correct_answers", Message: "must be non-negative"})
	}
	if u.TotalQuestions != nil && u.CorrectAnswers != nil && *u.CorrectAnswers > *u.TotalQuestions {
		errs = append(errs, domain.FieldError{Field: "correct_answers", Message: "cannot exceed total_questions"})
	}
	if u.TimeSpentSeconds != nil && *u.TimeSpentSeconds < 0 {
		errs = append(errs, domain.FieldError{Field: "time_spent_seconds", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
