package domain

import "time"

// TermProgress is one user's learning state for one term of one study set.
// Rows are unique on (UserID, StudySetID, TermID).
type TermProgress struct {
	ID               int64
	UserID           int64
	StudySetID       int64
	TermID           int64
	FamiliarityLevel *FamiliarityLevel
	CorrectCount     int
	IncorrectCount   int
	CurrentStreak    int
	LongestStreak    int
	LastStudied      *time.Time
	NextReview       *time.Time
}

// Level returns the familiarity level, treating an unset level as learning.
func (p *TermProgress) Level() FamiliarityLevel {
	if p.FamiliarityLevel == nil || !p.FamiliarityLevel.IsValid() {
		return FamiliarityLearning
	}
	return *p.FamiliarityLevel
}

// IsDue reports whether the term should be reviewed at now.
// A row that was never scheduled is always due.
func (p *TermProgress) IsDue(now time.Time) bool {
	return p.NextReview == nil || !p.NextReview.After(now)
}

// TotalAnswers is the number of graded answers recorded for the term.
func (p *TermProgress) TotalAnswers() int {
	return p.CorrectCount + p.IncorrectCount
}

// Term is a single term/definition pair of a study set.
type Term struct {
	ID         int64
	StudySetID int64
	Term       string
	Definition string
	Position   int
}

// ReviewTerm is a due progress row joined with its term content.
type ReviewTerm struct {
	Progress   TermProgress
	Term       string
	Definition string
}

// MasteryEvent is emitted when a term reaches the mastered level.
type MasteryEvent struct {
	UserID     int64     `json:"user_id"`
	StudySetID int64     `json:"study_set_id"`
	TermID     int64     `json:"term_id"`
	MasteredAt time.Time `json:"mastered_at"`
}
