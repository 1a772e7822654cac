package modes

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/heartmarshall/studyset-backend/internal/domain"
	"github.com/heartmarshall/studyset-backend/internal/service/study"
	"github.com/heartmarshall/studyset-backend/pkg/clock"
	"github.com/heartmarshall/studyset-backend/pkg/ctxutil"
)

//go:generate moq -out engine_mock_test.go -pkg modes . engine
//go:generate moq -out term_repo_mock_test.go -pkg modes . termRepo
//go:generate moq -out quiz_repo_mock_test.go -pkg modes . quizRepo
//go:generate moq -out match_repo_mock_test.go -pkg modes . matchRepo
//go:generate moq -out gravity_repo_mock_test.go -pkg modes . gravityRepo
//go:generate moq -out learn_repo_mock_test.go -pkg modes . learnRepo
//go:generate moq -out starred_repo_mock_test.go -pkg modes . starredRepo
//go:generate moq -out tx_manager_mock_test.go -pkg modes . txManager

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

// engine is the subset of the study-progress engine the modes drive.
type engine interface {
	RecordAnswer(ctx context.Context, input study.RecordAnswerInput) (*domain.TermProgress, error)
	StartSession(ctx context.Context, input study.StartSessionInput) (*domain.StudySession, error)
	CompleteSession(ctx context.Context, userID, sessionID int64, upd domain.SessionUpdate) (*domain.StudySession, error)
	GetProgress(ctx context.Context, userID, studySetID int64) ([]domain.TermProgress, error)
}

type termRepo interface {
	GetByID(ctx context.Context, studySetID, termID int64) (*domain.Term, error)
	ListBySet(ctx context.Context, studySetID int64) ([]domain.Term, error)
	SetExists(ctx context.Context, studySetID int64) (bool, error)
}

type quizRepo interface {
	Create(ctx context.Context, ts *domain.TestSession) (*domain.TestSession, error)
	GetByID(ctx context.Context, userID, testID int64) (*domain.TestSession, error)
	SaveAnswers(ctx context.Context, testID int64, questions []domain.TestQuestion) error
}

type matchRepo interface {
	Create(ctx context.Context, g *domain.MatchGame) (*domain.MatchGame, error)
	GetByID(ctx context.Context, userID, gameID int64) (*domain.MatchGame, error)
	AddMove(ctx context.Context, m *domain.MatchMove) (*domain.MatchMove, error)
	UpdateCounters(ctx context.Context, gameID int64, totalMatches, incorrectMatches int) error
	Complete(ctx context.Context, gameID int64, completionSeconds float64, incorrectMatches int, completedAt time.Time) error
}

type gravityRepo interface {
	Create(ctx context.Context, g *domain.GravityGame) (*domain.GravityGame, error)
	GetByID(ctx context.Context, userID, gameID int64) (*domain.GravityGame, error)
	AddTerm(ctx context.Context, t *domain.GravityTerm) (*domain.GravityTerm, error)
	UpdateState(ctx context.Context, g *domain.GravityGame) error
	Complete(ctx context.Context, gameID int64, durationSeconds int, completedAt time.Time) error
}

type learnRepo interface {
	Create(ctx context.Context, ls *domain.LearnSession) (*domain.LearnSession, error)
	GetByID(ctx context.Context, userID, learnID int64) (*domain.LearnSession, error)
	UpdateState(ctx context.Context, ls *domain.LearnSession) error
	AddQuestion(ctx context.Context, q *domain.LearnQuestion) (*domain.LearnQuestion, error)
}

type starredRepo interface {
	Star(ctx context.Context, userID, studySetID, termID int64) error
	Unstar(ctx context.Context, userID, studySetID, termID int64) error
	ListTermIDs(ctx context.Context, userID, studySetID int64) ([]int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Limits bounds the size of generated sessions.
type Limits struct {
	DefaultTestQuestions int
	MaxTestQuestions     int
	DefaultMatchPairs    int
	MaxMatchPairs        int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		DefaultTestQuestions: 20,
		MaxTestQuestions:     100,
		DefaultMatchPairs:    6,
		MaxMatchPairs:        12,
	}
}

// Repos groups the mode-specific stores.
type Repos struct {
	Terms   termRepo
	Quizzes quizRepo
	Matches matchRepo
	Gravity gravityRepo
	Learn   learnRepo
	Starred starredRepo
}

// Service drives the study modes on top of the study-progress engine.
type Service struct {
	engine  engine
	terms   termRepo
	quizzes quizRepo
	matches matchRepo
	gravity gravityRepo
	learn   learnRepo
	starred starredRepo
	tx      txManager
	log     *slog.Logger
	limits  Limits
	clock   clock.Clock

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService creates a new modes service. A nil rng is seeded randomly.
func NewService(
	log *slog.Logger,
	eng engine,
	repos Repos,
	tx txManager,
	limits Limits,
	clk clock.Clock,
	rng *rand.Rand,
) *Service {
	if clk == nil {
		clk = clock.Real{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Service{
		engine:  eng,
		terms:   repos.Terms,
		quizzes: repos.Quizzes,
		matches: repos.Matches,
		gravity: repos.Gravity,
		learn:   repos.Learn,
		starred: repos.Starred,
		tx:      tx,
		log:     log.With("service", "modes"),
		limits:  limits,
		clock:   clk,
		rng:     rng,
	}
}

func userFromCtx(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	return userID, nil
}

// loadTerms returns the set's terms, failing with ErrNotFound for an unknown
// set and ErrEmptyContent for a set without terms.
func (s *Service) loadTerms(ctx context.Context, studySetID int64) ([]domain.Term, error) {
	if studySetID <= 0 {
		return nil, domain.NewValidationError("study_set_id", "required")
	}

	terms, err := s.terms.ListBySet(ctx, studySetID)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	if len(terms) > 0 {
		return terms, nil
	}

	exists, err := s.terms.SetExists(ctx, studySetID)
	if err != nil {
		return nil, fmt.Errorf("check study set: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("study set %d: %w", studySetID, domain.ErrNotFound)
	}
	return nil, fmt.Errorf("study set %d: %w", studySetID, domain.ErrEmptyContent)
}

// recordAnswer forwards one graded answer to the engine. Callers that persist
// mode state run it inside the same transaction.
func (s *Service) recordAnswer(ctx context.Context, userID, studySetID, termID int64, correct bool, responseTime *float64) (*domain.TermProgress, error) {
	p, err := s.engine.RecordAnswer(ctx, study.RecordAnswerInput{
		UserID:       userID,
		StudySetID:   studySetID,
		TermID:       termID,
		Correct:      correct,
		ResponseTime: responseTime,
	})
	if err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}
	return p, nil
}

func (s *Service) shuffle(n int, swap func(i, j int)) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	s.rng.Shuffle(n, swap)
}

func (s *Service) intN(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.IntN(n)
}

// shuffledTerms returns a shuffled copy of terms.
func (s *Service) shuffledTerms(terms []domain.Term) []domain.Term {
	out := make([]domain.Term, len(terms))
	copy(out, terms)
	s.shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
