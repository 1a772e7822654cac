package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/studyset-backend/internal/domain"
	"github.com/heartmarshall/studyset-backend/internal/service/modes"
)

// modesService defines the minimal interface needed by ModesHandler.
type modesService interface {
	GetFlashcards(ctx context.Context, studySetID int64, starredOnly bool) ([]modes.Flashcard, error)
	SetStar(ctx context.Context, studySetID, termID int64, starred bool) error
	FlipCard(ctx context.Context, studySetID, termID int64, known bool) (*domain.TermProgress, error)

	CreateTest(ctx context.Context, studySetID int64, cfg modes.TestConfig) (*domain.TestSession, error)
	GetTest(ctx context.Context, testID int64) (*domain.TestSession, error)
	SubmitTest(ctx context.Context, testID int64, answers []modes.TestAnswer, totalTimeSeconds int) (*modes.TestResult, error)

	CreateMatch(ctx context.Context, studySetID int64, pairsCount int) (*modes.MatchBoard, error)
	SubmitMove(ctx context.Context, gameID int64, input modes.MoveInput) (*modes.MoveResult, error)
	CompleteMatch(ctx context.Context, gameID int64, completionSeconds float64, incorrectMatches *int) (*modes.MatchResult, error)

	CreateGravity(ctx context.Context, studySetID int64, difficulty int) (*modes.GravityRound, error)
	SubmitGravityAnswer(ctx context.Context, gameID int64, input modes.GravityAnswerInput) (*modes.GravityAnswerResult, error)
	CompleteGravity(ctx context.Context, gameID int64, durationSeconds int) (*domain.GravityGame, error)

	GetWriteQuestions(ctx context.Context, studySetID int64, answerWith domain.AnswerWith) ([]modes.WriteQuestion, error)
	CheckWrite(ctx context.Context, studySetID int64, input modes.WriteAnswerInput) (*modes.WriteResult, error)

	CreateLearn(ctx context.Context, studySetID int64) (*domain.LearnSession, error)
	NextLearnQuestion(ctx context.Context, learnID int64) (*modes.LearnPrompt, error)
	AnswerLearn(ctx context.Context, learnID int64, input modes.LearnAnswerInput) (*modes.LearnAnswerResult, error)
}

// ModesHandler serves the game-mode endpoints. The user id travels in the
// request context and is checked by the service.
type ModesHandler struct {
	svc modesService
	log *slog.Logger
}

// NewModesHandler creates a ModesHandler.
func NewModesHandler(svc modesService, logger *slog.Logger) *ModesHandler {
	return &ModesHandler{svc: svc, log: logger.With("handler", "modes")}
}

type termResponse struct {
	ID         int64  `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

func toTermResponse(t domain.Term) termResponse {
	return termResponse{ID: t.ID, Term: t.Term, Definition: t.Definition}
}

// ---------------------------------------------------------------------------
// Flashcards
// ---------------------------------------------------------------------------

type flashcardResponse struct {
	Term     termResponse      `json:"term"`
	Starred  bool              `json:"starred"`
	Progress *progressResponse `json:"progress,omitempty"`
}

type starRequest struct {
	Starred bool `json:"starred"`
}

type flipRequest struct {
	Known bool `json:"known"`
}

// GetFlashcards handles GET /modes/flashcards/{studySetID}?starred=true.
func (h *ModesHandler) GetFlashcards(w http.ResponseWriter, r *http.Request) {
	setID, err := pathID(r, "studySetID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	starredOnly := r.URL.Query().Get("starred") == "true"

	cards, err := h.svc.GetFlashcards(r.Context(), setID, starredOnly)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]flashcardResponse, len(cards))
	for i, c := range cards {
		out[i] = flashcardResponse{Term: toTermResponse(c.Term), Starred: c.Starred}
		if c.Progress != nil {
			p := toProgressResponse(*c.Progress)
			out[i].Progress = &p
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// SetStar handles PUT /modes/flashcards/{studySetID}/terms/{termID}/star.
func (h *ModesHandler) SetStar(w http.ResponseWriter, r *http.Request) {
	setID, err := pathID(r, "studySetID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	termID, err := pathID(r, "termID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req starRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.SetStar(r.Context(), setID, termID, req.Starred); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"starred": req.Starred})
}

// FlipCard handles POST /modes/flashcards/{studySetID}/terms/{termID}/flip.
func (h *ModesHandler) FlipCard(w http.ResponseWriter, r *http.Request) {
	setID, err := pathID(r, "studySetID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	termID, err := pathID(r, "termID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req flipRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.FlipCard(r.Context(), setID, termID, req.Known)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(*p))
}

// ---------------------------------------------------------------------------
// Test
// ---------------------------------------------------------------------------

type createTestRequest struct {
	StudySetID     int64    `json:"study_set_id"`
	MaxQuestions   int      `json:"max_questions"`
	AnswerWith     string   `json:"answer_with"`
	QuestionTypes  []string `json:"question_types"`
	TimeLimit      *int     `json:"time_limit"`
	RandomizeOrder bool     `json:"randomize_order"`
}

type submitTestRequest struct {
	Answers []struct {
		QuestionID int64  `json:"question_id"`
		Answer     string `json:"answer"`
		TimeSpent  *int   `json:"time_spent"`
	} `json:"answers"`
	TotalTime int `json:"total_time"`
}

type testQuestionResponse struct {
	ID            int64    `json:"id"`
	TermID        int64    `json:"term_id"`
	Type          string   `json:"question_type"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	Position      int      `json:"position"`
	UserAnswer    *string  `json:"user_answer,omitempty"`
	IsCorrect     *bool    `json:"is_correct,omitempty"`
	PointsEarned  *float64 `json:"points_earned,omitempty"`
	CorrectAnswer *string  `json:"correct_answer,omitempty"`
}

type testResponse struct {
	ID             int64                  `json:"id"`
	SessionID      int64                  `json:"session_id"`
	StudySetID     int64                  `json:"study_set_id"`
	MaxQuestions   int                    `json:"max_questions"`
	AnswerWith     string                 `json:"answer_with"`
	TimeLimit      *int                   `json:"time_limit,omitempty"`
	RandomizeOrder bool                   `json:"randomize_order"`
	CreatedAt      time.Time              `json:"created_at"`
	Questions      []testQuestionResponse `json:"questions"`
}

type breakdownResponse struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

type testResultResponse struct {
	TestID         int64                        `json:"test_id"`
	SessionID      int64                        `json:"session_id"`
	Score          float64                      `json:"score"`
	TotalQuestions int                          `json:"total_questions"`
	CorrectAnswers int                          `json:"correct_answers"`
	Breakdown      map[string]breakdownResponse `json:"breakdown"`
	ReviewTermIDs  []int64                      `json:"review_term_ids"`
	Questions      []testQuestionResponse       `json:"questions"`
}

// toTestQuestionResponses hides correct answers until the test is graded.
func toTestQuestionResponses(qs []domain.TestQuestion, reveal bool) []testQuestionResponse {
	out := make([]testQuestionResponse, len(qs))
	for i, q := range qs {
		out[i] = testQuestionResponse{
			ID:           q.ID,
			TermID:       q.TermID,
			Type:         q.Type.String(),
			Prompt:       q.Prompt,
			Options:      q.Options,
			Position:     q.Position,
			UserAnswer:   q.UserAnswer,
			IsCorrect:    q.IsCorrect,
			PointsEarned: q.PointsEarned,
		}
		if reveal {
			ca := q.CorrectAnswer
			out[i].CorrectAnswer = &ca
		}
	}
	return out
}

func toTestResponse(ts *domain.TestSession) testResponse {
	return testResponse{
		ID:             ts.ID,
		SessionID:      ts.SessionID,
		StudySetID:     ts.StudySetID,
		MaxQuestions:   ts.MaxQuestions,
		AnswerWith:     ts.AnswerWith.String(),
		TimeLimit:      ts.TimeLimit,
		RandomizeOrder: ts.RandomizeOrder,
		CreatedAt:      ts.CreatedAt,
		Questions:      toTestQuestionResponses(ts.Questions, ts.IsSubmitted()),
	}
}

// CreateTest handles POST /modes/test.
func (h *ModesHandler) CreateTest(w http.ResponseWriter, r *http.Request) {
	var req createTestRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	types := make([]domain.QuestionType, len(req.QuestionTypes))
	for i, t := range req.QuestionTypes {
		types[i] = domain.QuestionType(t)
	}

	ts, err := h.svc.CreateTest(r.Context(), req.StudySetID, modes.TestConfig{
		MaxQuestions:   req.MaxQuestions,
		AnswerWith:     domain.AnswerWith(req.AnswerWith),
		QuestionTypes:  types,
		TimeLimit:      req.TimeLimit,
		RandomizeOrder: req.RandomizeOrder,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTestResponse(ts))
}

// GetTest handles GET /modes/test/{id}.
func (h *ModesHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	testID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ts, err := h.svc.GetTest(r.Context(), testID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTestResponse(ts))
}

// SubmitTest handles POST /modes/test/{id}/submit.
func (h *ModesHandler) SubmitTest(w http.ResponseWriter, r *http.Request) {
	testID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req submitTestRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	answers := make([]modes.TestAnswer, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = modes.TestAnswer{QuestionID: a.QuestionID, Answer: a.Answer, TimeSpentSeconds: a.TimeSpent}
	}

	res, err := h.svc.SubmitTest(r.Context(), testID, answers, req.TotalTime)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	breakdown := make(map[string]breakdownResponse, len(res.Breakdown))
	for qt, b := range res.Breakdown {
		breakdown[qt.String()] = breakdownResponse{Total: b.Total, Correct: b.Correct}
	}
	writeJSON(w, http.StatusOK, testResultResponse{
		TestID:         res.TestID,
		SessionID:      res.SessionID,
		Score:          res.Score,
		TotalQuestions: res.TotalQuestions,
		CorrectAnswers: res.CorrectAnswers,
		Breakdown:      breakdown,
		ReviewTermIDs:  res.ReviewTermIDs,
		Questions:      toTestQuestionResponses(res.Questions, true),
	})
}

// ---------------------------------------------------------------------------
// Match
// ---------------------------------------------------------------------------

type createMatchRequest struct {
	StudySetID int64 `json:"study_set_id"`
	PairsCount int   `json:"pairs_count"`
}

type moveRequest struct {
	FirstCardID  string   `json:"first_card_id"`
	SecondCardID string   `json:"second_card_id"`
	TimeSpent    *float64 `json:"time_spent"`
}

type completeMatchRequest struct {
	CompletionTime   float64 `json:"completion_time"`
	IncorrectMatches *int    `json:"incorrect_matches"`
}

type matchGameResponse struct {
	ID                    int64      `json:"id"`
	SessionID             int64      `json:"session_id"`
	StudySetID            int64      `json:"study_set_id"`
	PairsCount            int        `json:"pairs_count"`
	TotalMatches          int        `json:"total_matches"`
	IncorrectMatches      int        `json:"incorrect_matches"`
	MatchedTermIDs        []int64    `json:"matched_term_ids"`
	CompletionTimeSeconds *float64   `json:"completion_time,omitempty"`
	CompletedAt           *time.Time `json:"completed_at,omitempty"`
}

type matchCardResponse struct {
	ID   string `json:"id"`
	Side string `json:"side"`
	Text string `json:"text"`
}

func toMatchGameResponse(g domain.MatchGame) matchGameResponse {
	return matchGameResponse{
		ID:                    g.ID,
		SessionID:             g.SessionID,
		StudySetID:            g.StudySetID,
		PairsCount:            g.PairsCount,
		TotalMatches:          g.TotalMatches,
		IncorrectMatches:      g.IncorrectMatches,
		MatchedTermIDs:        nonNilIDs(g.MatchedTerms),
		CompletionTimeSeconds: g.CompletionTimeSeconds,
		CompletedAt:           g.CompletedAt,
	}
}

func nonNilIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

// CreateMatch handles POST /modes/match.
func (h *ModesHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	board, err := h.svc.CreateMatch(r.Context(), req.StudySetID, req.PairsCount)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cards := make([]matchCardResponse, len(board.Cards))
	for i, c := range board.Cards {
		cards[i] = matchCardResponse{ID: c.ID, Side: string(c.Side), Text: c.Text}
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"game":  toMatchGameResponse(board.Game),
		"cards": cards,
	})
}

// SubmitMove handles POST /modes/match/{id}/moves.
func (h *ModesHandler) SubmitMove(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.SubmitMove(r.Context(), gameID, modes.MoveInput{
		FirstCardID:      req.FirstCardID,
		SecondCardID:     req.SecondCardID,
		TimeSpentSeconds: req.TimeSpent,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"is_match":    res.Move.IsMatch,
		"move_number": res.Move.MoveNumber,
		"game":        toMatchGameResponse(res.Game),
	})
}

// CompleteMatch handles POST /modes/match/{id}/complete.
func (h *ModesHandler) CompleteMatch(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req completeMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.CompleteMatch(r.Context(), gameID, req.CompletionTime, req.IncorrectMatches)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"score": res.Score,
		"game":  toMatchGameResponse(res.Game),
	})
}

// ---------------------------------------------------------------------------
// Gravity
// ---------------------------------------------------------------------------

type createGravityRequest struct {
	StudySetID int64 `json:"study_set_id"`
	Difficulty int   `json:"difficulty"`
}

type gravityAnswerRequest struct {
	TermID  int64   `json:"term_id"`
	Answer  string  `json:"answer"`
	Seconds float64 `json:"seconds"`
}

type completeGravityRequest struct {
	Duration int `json:"duration"`
}

type gravityGameResponse struct {
	ID              int64      `json:"id"`
	SessionID       int64      `json:"session_id"`
	StudySetID      int64      `json:"study_set_id"`
	DifficultyLevel int        `json:"difficulty_level"`
	SpeedMultiplier float64    `json:"speed_multiplier"`
	LivesRemaining  int        `json:"lives_remaining"`
	Score           int        `json:"score"`
	TermsDestroyed  int        `json:"terms_destroyed"`
	Duration        *int       `json:"game_duration,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

func toGravityGameResponse(g domain.GravityGame) gravityGameResponse {
	return gravityGameResponse{
		ID:              g.ID,
		SessionID:       g.SessionID,
		StudySetID:      g.StudySetID,
		DifficultyLevel: g.DifficultyLevel,
		SpeedMultiplier: g.SpeedMultiplier,
		LivesRemaining:  g.LivesRemaining,
		Score:           g.Score,
		TermsDestroyed:  g.TermsDestroyed,
		Duration:        g.GameDurationSeconds,
		CompletedAt:     g.CompletedAt,
	}
}

// CreateGravity handles POST /modes/gravity.
func (h *ModesHandler) CreateGravity(w http.ResponseWriter, r *http.Request) {
	var req createGravityRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	round, err := h.svc.CreateGravity(r.Context(), req.StudySetID, req.Difficulty)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	terms := make([]termResponse, len(round.Terms))
	for i, t := range round.Terms {
		terms[i] = toTermResponse(t)
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"game":  toGravityGameResponse(round.Game),
		"terms": terms,
	})
}

// SubmitGravityAnswer handles POST /modes/gravity/{id}/answers.
func (h *ModesHandler) SubmitGravityAnswer(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req gravityAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.SubmitGravityAnswer(r.Context(), gameID, modes.GravityAnswerInput{
		TermID:  req.TermID,
		Answer:  req.Answer,
		Seconds: req.Seconds,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"correct": res.Correct,
		"points":  res.Points,
		"game":    toGravityGameResponse(res.Game),
	})
}

// CompleteGravity handles POST /modes/gravity/{id}/complete.
func (h *ModesHandler) CompleteGravity(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req completeGravityRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	g, err := h.svc.CompleteGravity(r.Context(), gameID, req.Duration)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGravityGameResponse(*g))
}

// ---------------------------------------------------------------------------
// Write
// ---------------------------------------------------------------------------

type writeQuestionResponse struct {
	ID        string `json:"id"`
	TermID    int64  `json:"term_id"`
	Direction string `json:"direction"`
	Prompt    string `json:"prompt"`
}

type checkWriteRequest struct {
	QuestionID   string   `json:"question_id"`
	Answer       string   `json:"answer"`
	ResponseTime *float64 `json:"response_time"`
}

// GetWriteQuestions handles GET /modes/write/{studySetID}?answer_with=term.
func (h *ModesHandler) GetWriteQuestions(w http.ResponseWriter, r *http.Request) {
	setID, err := pathID(r, "studySetID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	qs, err := h.svc.GetWriteQuestions(r.Context(), setID, domain.AnswerWith(r.URL.Query().Get("answer_with")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]writeQuestionResponse, len(qs))
	for i, q := range qs {
		out[i] = writeQuestionResponse{ID: q.ID, TermID: q.TermID, Direction: q.Direction.String(), Prompt: q.Prompt}
	}
	writeJSON(w, http.StatusOK, out)
}

// CheckWrite handles POST /modes/write/{studySetID}/check.
func (h *ModesHandler) CheckWrite(w http.ResponseWriter, r *http.Request) {
	setID, err := pathID(r, "studySetID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req checkWriteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.CheckWrite(r.Context(), setID, modes.WriteAnswerInput{
		QuestionID:   req.QuestionID,
		Answer:       req.Answer,
		ResponseTime: req.ResponseTime,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := map[string]any{
		"correct":        res.Correct,
		"score":          res.Score,
		"correct_answer": res.CorrectAnswer,
	}
	if res.Progress != nil {
		resp["progress"] = toProgressResponse(*res.Progress)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Learn
// ---------------------------------------------------------------------------

type createLearnRequest struct {
	StudySetID int64 `json:"study_set_id"`
}

type learnAnswerRequest struct {
	TermID       int64    `json:"term_id"`
	QuestionType string   `json:"question_type"`
	Answer       string   `json:"answer"`
	ResponseTime *float64 `json:"response_time"`
}

type learnSessionResponse struct {
	ID                int64 `json:"id"`
	SessionID         int64 `json:"session_id"`
	StudySetID        int64 `json:"study_set_id"`
	CurrentDifficulty int   `json:"current_difficulty"`
	QuestionsAnswered int   `json:"questions_answered"`
	CorrectAnswers    int   `json:"correct_answers"`
	CurrentStreak     int   `json:"current_streak"`
}

func toLearnSessionResponse(ls domain.LearnSession) learnSessionResponse {
	return learnSessionResponse{
		ID:                ls.ID,
		SessionID:         ls.SessionID,
		StudySetID:        ls.StudySetID,
		CurrentDifficulty: ls.CurrentDifficulty,
		QuestionsAnswered: ls.QuestionsAnswered,
		CorrectAnswers:    ls.CorrectAnswers,
		CurrentStreak:     ls.CurrentStreak,
	}
}

// CreateLearn handles POST /modes/learn.
func (h *ModesHandler) CreateLearn(w http.ResponseWriter, r *http.Request) {
	var req createLearnRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ls, err := h.svc.CreateLearn(r.Context(), req.StudySetID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLearnSessionResponse(*ls))
}

// NextLearnQuestion handles GET /modes/learn/{id}/next.
func (h *ModesHandler) NextLearnQuestion(w http.ResponseWriter, r *http.Request) {
	learnID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.NextLearnQuestion(r.Context(), learnID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"learn_session_id": p.LearnSessionID,
		"term_id":          p.TermID,
		"question_type":    p.Type.String(),
		"prompt":           p.Prompt,
		"options":          p.Options,
		"difficulty":       p.Difficulty,
	})
}

// AnswerLearn handles POST /modes/learn/{id}/answers.
func (h *ModesHandler) AnswerLearn(w http.ResponseWriter, r *http.Request) {
	learnID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req learnAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.AnswerLearn(r.Context(), learnID, modes.LearnAnswerInput{
		TermID:       req.TermID,
		Type:         domain.QuestionType(req.QuestionType),
		Answer:       req.Answer,
		ResponseTime: req.ResponseTime,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := map[string]any{
		"correct":        res.Correct,
		"points":         res.Points,
		"correct_answer": res.CorrectAnswer,
		"session":        toLearnSessionResponse(res.Session),
	}
	if res.Progress != nil {
		resp["progress"] = toProgressResponse(*res.Progress)
	}
	writeJSON(w, http.StatusOK, resp)
}
