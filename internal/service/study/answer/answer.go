// Package answer grades free-text and choice answers against the expected text.
// Every function is pure.
package answer

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/studyset-backend/internal/domain"
)

// partialThreshold is the answer/correct length ratio above which a wrong
// answer still earns partial credit.
const partialThreshold = 0.7

// PartialScore is the credit awarded for a close but wrong answer.
const PartialScore = 0.5

// Verdict is the outcome of grading one answer.
type Verdict struct {
	Correct bool
	Score   float64
}

// CheckExact compares normalized strings for equality.
func CheckExact(answer, correct string) bool {
	return domain.NormalizeText(answer) == domain.NormalizeText(correct)
}

// CheckFuzzy accepts an exact match or a normalized answer that contains,
// or is contained in, the normalized correct answer.
// An empty answer never matches a non-empty correct answer.
func CheckFuzzy(answer, correct string) bool {
	a := domain.NormalizeText(answer)
	c := domain.NormalizeText(correct)
	if a == c {
		return true
	}
	if a == "" || c == "" {
		return false
	}
	return strings.Contains(c, a) || strings.Contains(a, c)
}

// CheckAny reports whether answer fuzzy-matches any of the accepted answers.
func CheckAny(answer string, accepted []string) bool {
	for _, c := range accepted {
		if CheckFuzzy(answer, c) {
			return true
		}
	}
	return false
}

// PartialCredit returns PartialScore when the trimmed answer is longer than
// 70% of the trimmed correct answer, counted in runes, and 0 otherwise.
func PartialCredit(answer, correct string) float64 {
	a := utf8.RuneCountInString(strings.TrimSpace(answer))
	c := utf8.RuneCountInString(strings.TrimSpace(correct))
	if float64(a) > partialThreshold*float64(c) {
		return PartialScore
	}
	return 0
}

// CheckByQuestionType picks the comparison suited to the question shape.
// Choice questions need an exact pick; written answers are graded fuzzily.
func CheckByQuestionType(qt domain.QuestionType, answer, correct string) bool {
	switch qt {
	case domain.QuestionTypeWritten:
		return CheckFuzzy(answer, correct)
	default:
		return CheckExact(answer, correct)
	}
}

// Grade checks a written answer and assigns its score: 1 when correct,
// otherwise the partial credit.
func Grade(answer, correct string) Verdict {
	if CheckFuzzy(answer, correct) {
		return Verdict{Correct: true, Score: 1}
	}
	return Verdict{Correct: false, Score: PartialCredit(answer, correct)}
}

// GradeByQuestionType grades an answer for a question of type qt. Only
// written answers can earn partial credit.
func GradeByQuestionType(qt domain.QuestionType, answer, correct string) Verdict {
	if qt == domain.QuestionTypeWritten {
		return Grade(answer, correct)
	}
	if CheckByQuestionType(qt, answer, correct) {
		return Verdict{Correct: true, Score: 1}
	}
	return Verdict{}
}
