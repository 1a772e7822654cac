package domain

// FamiliarityLevel is the SRS state of a user's knowledge of one term.
type FamiliarityLevel string

const (
	FamiliarityLearning FamiliarityLevel = "learning"
	FamiliarityFamiliar FamiliarityLevel = "familiar"
	FamiliarityMastered FamiliarityLevel = "mastered"
)

func (l FamiliarityLevel) String() string { return string(l) }

func (l FamiliarityLevel) IsValid() bool {
	switch l {
	case FamiliarityLearning, FamiliarityFamiliar, FamiliarityMastered:
		return true
	}
	return false
}

// Rank orders levels from least to most familiar. Unknown levels rank as learning.
func (l FamiliarityLevel) Rank() int {
	switch l {
	case FamiliarityFamiliar:
		return 1
	case FamiliarityMastered:
		return 2
	default:
		return 0
	}
}

// StudyMode identifies the game-like mode a study session runs in.
type StudyMode string

const (
	StudyModeFlashcards StudyMode = "flashcards"
	StudyModeLearn      StudyMode = "learn"
	StudyModeWrite      StudyMode = "write"
	StudyModeSpell      StudyMode = "spell"
	StudyModeTest       StudyMode = "test"
	StudyModeMatch      StudyMode = "match"
	StudyModeGravity    StudyMode = "gravity"
)

func (m StudyMode) String() string { return string(m) }

func (m StudyMode) IsValid() bool {
	switch m {
	case StudyModeFlashcards, StudyModeLearn, StudyModeWrite, StudyModeSpell,
		StudyModeTest, StudyModeMatch, StudyModeGravity:
		return true
	}
	return false
}

// QuestionType is the shape of a generated question.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeTrueFalse      QuestionType = "true_false"
	QuestionTypeWritten        QuestionType = "written"
)

func (q QuestionType) String() string { return string(q) }

func (q QuestionType) IsValid() bool {
	switch q {
	case QuestionTypeMultipleChoice, QuestionTypeTrueFalse, QuestionTypeWritten:
		return true
	}
	return false
}

// AnswerWith selects which side of a card the user has to produce.
type AnswerWith string

const (
	AnswerWithTerm       AnswerWith = "term"
	AnswerWithDefinition AnswerWith = "definition"
	AnswerWithBoth       AnswerWith = "both"
)

func (a AnswerWith) String() string { return string(a) }

func (a AnswerWith) IsValid() bool {
	switch a {
	case AnswerWithTerm, AnswerWithDefinition, AnswerWithBoth:
		return true
	}
	return false
}

// Direction is the orientation of a single prompt.
type Direction string

const (
	// DirectionDefinitionToTerm shows the definition and expects the term.
	DirectionDefinitionToTerm Direction = "definition_to_term"
	// DirectionTermToDefinition shows the term and expects the definition.
	DirectionTermToDefinition Direction = "term_to_definition"
)

func (d Direction) String() string { return string(d) }

// Directions expands an AnswerWith setting into the prompt orientations it produces.
func (a AnswerWith) Directions() []Direction {
	switch a {
	case AnswerWithTerm:
		return []Direction{DirectionDefinitionToTerm}
	case AnswerWithDefinition:
		return []Direction{DirectionTermToDefinition}
	default:
		return []Direction{DirectionDefinitionToTerm, DirectionTermToDefinition}
	}
}
