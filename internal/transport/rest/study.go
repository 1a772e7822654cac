package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/studyset-backend/internal/domain"
	"github.com/heartmarshall/studyset-backend/internal/service/study"
	"github.com/heartmarshall/studyset-backend/internal/transport/termloader"
)

// studyService defines the minimal interface needed by StudyHandler.
type studyService interface {
	GetProgress(ctx context.Context, userID, studySetID int64) ([]domain.TermProgress, error)
	GetDueTerms(ctx context.Context, userID, studySetID int64) ([]domain.TermProgress, error)
	GetReviewTerms(ctx context.Context, userID, studySetID int64) ([]domain.ReviewTerm, error)
	RecordAnswer(ctx context.Context, input study.RecordAnswerInput) (*domain.TermProgress, error)
	StartSession(ctx context.Context, input study.StartSessionInput) (*domain.StudySession, error)
	CompleteSession(ctx context.Context, userID, sessionID int64, upd domain.SessionUpdate) (*domain.StudySession, error)
	GetSession(ctx context.Context, userID, sessionID int64) (*domain.StudySession, error)
}

// StudyHandler serves progress, review and session endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type progressResponse struct {
	ID               int64      `json:"id"`
	StudySetID       int64      `json:"study_set_id"`
	TermID           int64      `json:"term_id"`
	Term             *string    `json:"term,omitempty"`
	Definition       *string    `json:"definition,omitempty"`
	FamiliarityLevel string     `json:"familiarity_level"`
	CorrectCount     int        `json:"correct_count"`
	IncorrectCount   int        `json:"incorrect_count"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastStudied      *time.Time `json:"last_studied,omitempty"`
	NextReview       *time.Time `json:"next_review,omitempty"`
}

type recordAnswerRequest struct {
	Correct      bool     `json:"correct"`
	ResponseTime *float64 `json:"response_time"`
	Difficulty   *int     `json:"difficulty"`
}

type startSessionRequest struct {
	StudySetID int64  `json:"study_set_id"`
	Mode       string `json:"mode"`
}

type completeSessionRequest struct {
	Score            *float64   `json:"score"`
	TotalQuestions   *int       `json:"total_questions"`
	CorrectAnswers   *int       `json:"correct_answers"`
	TimeSpentSeconds *int       `json:"time_spent_seconds"`
	CompletedAt      *time.Time `json:"completed_at"`
}

type sessionResponse struct {
	ID               int64      `json:"id"`
	StudySetID       int64      `json:"study_set_id"`
	Mode             string     `json:"mode"`
	StartedAt        time.Time  `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	Score            *float64   `json:"score,omitempty"`
	TotalQuestions   *int       `json:"total_questions,omitempty"`
	CorrectAnswers   *int       `json:"correct_answers,omitempty"`
	TimeSpentSeconds *int       `json:"time_spent_seconds,omitempty"`
}

func toProgressResponse(p domain.TermProgress) progressResponse {
	return progressResponse{
		ID:               p.ID,
		StudySetID:       p.StudySetID,
		TermID:           p.TermID,
		FamiliarityLevel: p.Level().String(),
		CorrectCount:     p.CorrectCount,
		IncorrectCount:   p.IncorrectCount,
		CurrentStreak:    p.CurrentStreak,
		LongestStreak:    p.LongestStreak,
		LastStudied:      p.LastStudied,
		NextReview:       p.NextReview,
	}
}

func toSessionResponse(s *domain.StudySession) sessionResponse {
	return sessionResponse{
		ID:               s.ID,
		StudySetID:       s.StudySetID,
		Mode:             s.Mode.String(),
		StartedAt:        s.StartedAt,
		CompletedAt:      s.CompletedAt,
		Score:            s.Score,
		TotalQuestions:   s.TotalQuestions,
		CorrectAnswers:   s.CorrectAnswers,
		TimeSpentSeconds: s.TimeSpentSeconds,
	}
}

// ---------------------------------------------------------------------------
// Progress
// ---------------------------------------------------------------------------

// GetProgress handles GET /progress/{studySetID}. Rows carry the term text,
// resolved through the per-request term loader.
func (h *StudyHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	h.listProgress(w, r, h.svc.GetProgress)
}

// GetDue handles GET /progress/{studySetID}/due.
func (h *StudyHandler) GetDue(w http.ResponseWriter, r *http.Request) {
	h.listProgress(w, r, h.svc.GetDueTerms)
}

func (h *StudyHandler) listProgress(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, userID, studySetID int64) ([]domain.TermProgress, error),
) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	setID, err := pathID(r, "studySetID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rows, err := list(r.Context(), userID, setID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ids := make([]int64, len(rows))
	for i, p := range rows {
		ids[i] = p.TermID
	}
	terms, err := termloader.FromContext(r.Context()).LoadTerms(r.Context(), ids)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]progressResponse, len(rows))
	for i, p := range rows {
		out[i] = toProgressResponse(p)
		if t, ok := terms[p.TermID]; ok {
			out[i].Term = &t.Term
			out[i].Definition = &t.Definition
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// RecordAnswer handles POST /progress/{studySetID}/terms/{termID}.
func (h *StudyHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
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

	var req recordAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.RecordAnswer(r.Context(), study.RecordAnswerInput{
		UserID:       userID,
		StudySetID:   setID,
		TermID:       termID,
		Correct:      req.Correct,
		ResponseTime: req.ResponseTime,
		Difficulty:   req.Difficulty,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(*p))
}

// GetReview handles GET /review/{studySetID}.
func (h *StudyHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	setID, err := pathID(r, "studySetID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	terms, err := h.svc.GetReviewTerms(r.Context(), userID, setID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]progressResponse, len(terms))
	for i, rt := range terms {
		out[i] = toProgressResponse(rt.Progress)
		out[i].Term = &rt.Term
		out[i].Definition = &rt.Definition
	}
	writeJSON(w, http.StatusOK, out)
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

// StartSession handles POST /session.
func (h *StudyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	session, err := h.svc.StartSession(r.Context(), study.StartSessionInput{
		UserID:     userID,
		StudySetID: req.StudySetID,
		Mode:       domain.StudyMode(req.Mode),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

// CompleteSession handles PUT /session/{id}.
func (h *StudyHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	sessionID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req completeSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	session, err := h.svc.CompleteSession(r.Context(), userID, sessionID, domain.SessionUpdate{
		Score:            req.Score,
		TotalQuestions:   req.TotalQuestions,
		CorrectAnswers:   req.CorrectAnswers,
		TimeSpentSeconds: req.TimeSpentSeconds,
		CompletedAt:      req.CompletedAt,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// GetSession handles GET /session/{id}.
func (h *StudyHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	sessionID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	session, err := h.svc.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}
