package domain

import "time"

// StudySession is one sitting of a user in a particular mode.
type StudySession struct {
	ID               int64
	UserID           int64
	StudySetID       int64
	Mode             StudyMode
	StartedAt        time.Time
	CompletedAt      *time.Time
	Score            *float64
	TotalQuestions   *int
	CorrectAnswers   *int
	TimeSpentSeconds *int
}

// IsCompleted reports whether the session was already closed.
func (s *StudySession) IsCompleted() bool {
	return s.CompletedAt != nil
}

// SessionUpdate is a partial update of a session. Nil fields are left untouched.
type SessionUpdate struct {
	Score            *float64
	TotalQuestions   *int
	CorrectAnswers   *int
	TimeSpentSeconds *int
	CompletedAt      *time.Time
}

// IsEmpty reports whether the update carries no fields.
func (u SessionUpdate) IsEmpty() bool {
	return u.Score == nil && u.TotalQuestions == nil && u.CorrectAnswers == nil &&
		u.TimeSpentSeconds == nil && u.CompletedAt == nil
}
