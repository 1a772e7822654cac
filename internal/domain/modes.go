package domain

import "time"

// ---------------------------------------------------------------------------
// Test mode
// ---------------------------------------------------------------------------

// TestSession is the configuration of a generated test bound to a study session.
type TestSession struct {
	ID             int64
	SessionID      int64
	StudySetID     int64 // from the owning session
	MaxQuestions   int
	AnswerWith     AnswerWith
	QuestionTypes  []QuestionType
	TimeLimit      *int
	RandomizeOrder bool
	CreatedAt      time.Time
	Questions      []TestQuestion
}

// IsSubmitted reports whether any question already carries an answer.
func (t *TestSession) IsSubmitted() bool {
	for i := range t.Questions {
		if t.Questions[i].IsCorrect != nil {
			return true
		}
	}
	return false
}

// TestQuestion is a single generated question of a test.
type TestQuestion struct {
	ID               int64
	TestSessionID    int64
	TermID           int64
	Type             QuestionType
	Prompt           string
	CorrectAnswer    string
	Options          []string
	UserAnswer       *string
	IsCorrect        *bool
	PointsEarned     *float64
	TimeSpentSeconds *int
	Position         int
}

// ---------------------------------------------------------------------------
// Match mode
// ---------------------------------------------------------------------------

// MatchGame is a board of term/definition cards the user pairs up.
type MatchGame struct {
	ID                    int64
	SessionID             int64
	StudySetID            int64
	PairsCount            int
	SelectedTerms         []int64
	CompletedAt           *time.Time
	CompletionTimeSeconds *float64
	IncorrectMatches      int
	TotalMatches          int
	// MatchedTerms lists the terms already paired in this game, ascending.
	MatchedTerms []int64
}

// MatchCardSide tells whether a card shows the term or the definition.
type MatchCardSide string

const (
	MatchCardTerm       MatchCardSide = "term"
	MatchCardDefinition MatchCardSide = "definition"
)

// MatchCard is one face-up card on the board. Card IDs are unique per board.
type MatchCard struct {
	ID     string
	TermID int64
	Side   MatchCardSide
	Text   string
}

// MatchMove is one attempt to pair two cards.
type MatchMove struct {
	ID               int64
	GameID           int64
	MoveNumber       int
	FirstTermID      int64
	SecondTermID     int64
	IsMatch          bool
	TimeSpentSeconds *float64
	MovedAt          time.Time
}

// ---------------------------------------------------------------------------
// Gravity mode
// ---------------------------------------------------------------------------

// GravityStartingLives is the number of misses a gravity game tolerates.
const GravityStartingLives = 3

// GravityGame is a falling-terms typing game.
type GravityGame struct {
	ID                  int64
	SessionID           int64
	StudySetID          int64
	DifficultyLevel     int
	SpeedMultiplier     float64
	LivesRemaining      int
	Score               int
	TermsDestroyed      int
	GameDurationSeconds *int
	CompletedAt         *time.Time
}

// IsOver reports whether the game can no longer accept answers.
func (g *GravityGame) IsOver() bool {
	return g.LivesRemaining <= 0 || g.CompletedAt != nil
}

// GravityTerm records one falling term and how it was handled.
type GravityTerm struct {
	ID                   int64
	GameID               int64
	TermID               int64
	AppearedAt           time.Time
	WasDestroyed         bool
	TimeToDestroySeconds *float64
	UserAnswer           *string
}

// ---------------------------------------------------------------------------
// Learn mode
// ---------------------------------------------------------------------------

// LearnSession holds the adaptive state of a learn run.
type LearnSession struct {
	ID                int64
	SessionID         int64
	StudySetID        int64
	CurrentDifficulty int
	QuestionsAnswered int
	CorrectAnswers    int
	CurrentStreak     int
	CreatedAt         time.Time
}

// LearnQuestion is one answered question of a learn run.
type LearnQuestion struct {
	ID                  int64
	LearnSessionID      int64
	TermID              int64
	Type                QuestionType
	DifficultyLevel     int
	UserAnswer          *string
	IsCorrect           *bool
	ResponseTimeSeconds *float64
	PointsEarned        int
	AskedAt             time.Time
}

// ---------------------------------------------------------------------------
// Flashcards
// ---------------------------------------------------------------------------

// StarredCard marks a term the user wants to focus on.
type StarredCard struct {
	UserID     int64
	StudySetID int64
	TermID     int64
	StarredAt  time.Time
}
