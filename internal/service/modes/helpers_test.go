package modes

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/heartmarshall/studyset-backend/internal/domain"
	"github.com/heartmarshall/studyset-backend/internal/service/study"
	"github.com/heartmarshall/studyset-backend/pkg/clock"
	"github.com/heartmarshall/studyset-backend/pkg/ctxutil"
)

const (
	testUserID int64 = 7
	testSetID  int64 = 10
)

var testNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

const timeDay = 24 * time.Hour

func ptr[T any](v T) *T { return &v }

func userCtx() context.Context {
	return ctxutil.WithUserID(context.Background(), testUserID)
}

func capitals() []domain.Term {
	return []domain.Term{
		{ID: 1, StudySetID: testSetID, Term: "Paris", Definition: "capital of France", Position: 0},
		{ID: 2, StudySetID: testSetID, Term: "Rome", Definition: "capital of Italy", Position: 1},
		{ID: 3, StudySetID: testSetID, Term: "Berlin", Definition: "capital of Germany", Position: 2},
		{ID: 4, StudySetID: testSetID, Term: "Madrid", Definition: "capital of Spain", Position: 3},
		{ID: 5, StudySetID: testSetID, Term: "Lisbon", Definition: "capital of Portugal", Position: 4},
	}
}

// fakeTerms serves a fixed term list for testSetID; other sets do not exist.
func fakeTerms(terms []domain.Term) *termRepoMock {
	return &termRepoMock{
		ListBySetFunc: func(ctx context.Context, studySetID int64) ([]domain.Term, error) {
			if studySetID != testSetID {
				return nil, nil
			}
			return terms, nil
		},
		SetExistsFunc: func(ctx context.Context, studySetID int64) (bool, error) {
			return studySetID == testSetID, nil
		},
		GetByIDFunc: func(ctx context.Context, studySetID, termID int64) (*domain.Term, error) {
			if studySetID != testSetID {
				return nil, domain.ErrNotFound
			}
			for _, t := range terms {
				if t.ID == termID {
					out := t
					return &out, nil
				}
			}
			return nil, domain.ErrNotFound
		},
	}
}

// fakeEngine accepts every call and echoes plausible results.
func fakeEngine() *engineMock {
	return &engineMock{
		RecordAnswerFunc: func(ctx context.Context, input study.RecordAnswerInput) (*domain.TermProgress, error) {
			p := &domain.TermProgress{UserID: input.UserID, StudySetID: input.StudySetID, TermID: input.TermID}
			if input.Correct {
				p.CorrectCount = 1
			} else {
				p.IncorrectCount = 1
			}
			return p, nil
		},
		StartSessionFunc: func(ctx context.Context, input study.StartSessionInput) (*domain.StudySession, error) {
			return &domain.StudySession{ID: 500, UserID: input.UserID, StudySetID: input.StudySetID, Mode: input.Mode, StartedAt: testNow}, nil
		},
		CompleteSessionFunc: func(ctx context.Context, userID, sessionID int64, upd domain.SessionUpdate) (*domain.StudySession, error) {
			return &domain.StudySession{
				ID: sessionID, UserID: userID, Score: upd.Score, TotalQuestions: upd.TotalQuestions,
				CorrectAnswers: upd.CorrectAnswers, TimeSpentSeconds: upd.TimeSpentSeconds, CompletedAt: upd.CompletedAt,
			}, nil
		},
		GetProgressFunc: func(ctx context.Context, userID, studySetID int64) ([]domain.TermProgress, error) {
			return nil, nil
		},
	}
}

type txKey struct{}

// passthroughTx runs fn directly and marks its context, so mocks can tell
// whether a write happened inside the transaction.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			if inTx(ctx) {
				return fn(ctx)
			}
			return fn(context.WithValue(ctx, txKey{}, true))
		},
	}
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

func newTestService(eng engine, repos Repos) *Service {
	return newTestServiceWithTx(eng, repos, passthroughTx())
}

func newTestServiceWithTx(eng engine, repos Repos, tx txManager) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(logger, eng, repos, tx, DefaultLimits(), clock.Fixed(testNow), rand.New(rand.NewPCG(1, 2)))
}
