package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/studyset-backend/internal/domain"
	"github.com/heartmarshall/studyset-backend/internal/service/study/srs"
	"github.com/heartmarshall/studyset-backend/pkg/clock"
)

//go:generate moq -out progress_repo_mock_test.go -pkg study . progressRepo
//go:generate moq -out term_repo_mock_test.go -pkg study . termRepo
//go:generate moq -out session_repo_mock_test.go -pkg study . sessionRepo
//go:generate moq -out notifier_mock_test.go -pkg study . notifier
//go:generate moq -out tx_manager_mock_test.go -pkg study . txManager

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type progressRepo interface {
	// Ensure creates an empty row for the triple if none exists.
	Ensure(ctx context.Context, userID, studySetID, termID int64) error
	GetForUpdate(ctx context.Context, userID, studySetID, termID int64) (*domain.TermProgress, error)
	Update(ctx context.Context, p *domain.TermProgress) (*domain.TermProgress, error)
	ListBySet(ctx context.Context, userID, studySetID int64) ([]domain.TermProgress, error)
	ListDue(ctx context.Context, userID, studySetID int64, now time.Time) ([]domain.TermProgress, error)
}

type termRepo interface {
	GetByID(ctx context.Context, studySetID, termID int64) (*domain.Term, error)
	ListBySet(ctx context.Context, studySetID int64) ([]domain.Term, error)
	SetExists(ctx context.Context, studySetID int64) (bool, error)
}

type sessionRepo interface {
	Create(ctx context.Context, session *domain.StudySession) (*domain.StudySession, error)
	GetByID(ctx context.Context, userID, sessionID int64) (*domain.StudySession, error)
	Update(ctx context.Context, userID, sessionID int64, upd domain.SessionUpdate) (*domain.StudySession, error)
}

type notifier interface {
	TermMastered(ctx context.Context, event domain.MasteryEvent) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service records answers, schedules reviews and tracks study sessions.
type Service struct {
	progress progressRepo
	terms    termRepo
	sessions sessionRepo
	notify   notifier
	tx       txManager
	log      *slog.Logger
	policy   srs.Policy
	clock    clock.Clock
}

// NewService creates a new Study service. notify may be nil.
func NewService(
	log *slog.Logger,
	progress progressRepo,
	terms termRepo,
	sessions sessionRepo,
	notify notifier,
	tx txManager,
	policy srs.Policy,
	clk clock.Clock,
) *Service {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Service{
		progress: progress,
		terms:    terms,
		sessions: sessions,
		notify:   notify,
		tx:       tx,
		log:      log.With("service", "study"),
		policy:   policy,
		clock:    clk,
	}
}
