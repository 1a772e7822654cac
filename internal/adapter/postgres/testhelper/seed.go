package testhelper

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studyset-backend/internal/domain"
)

var userSeq atomic.Int64

// NextUserID returns a user id not used by any other test in the process.
// Users live outside this schema, so any positive id is valid.
func NextUserID() int64 {
	return 1_000_000 + userSeq.Add(1)
}

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedStudySet creates a study set with one term per pair {term, definition},
// positioned in argument order. Returns the set id and the terms.
func SeedStudySet(t *testing.T, pool *pgxpool.Pool, pairs ...[2]string) (int64, []domain.Term) {
	t.Helper()
	ctx := context.Background()

	var setID int64
	err := pool.QueryRow(ctx,
		`INSERT INTO study_sets (owner_id, title) VALUES ($1, $2) RETURNING id`,
		NextUserID(), "set-"+uniqueSuffix(),
	).Scan(&setID)
	if err != nil {
		t.Fatalf("testhelper: SeedStudySet insert study_set: %v", err)
	}

	terms := make([]domain.Term, 0, len(pairs))
	for i, p := range pairs {
		term := domain.Term{StudySetID: setID, Term: p[0], Definition: p[1], Position: i}
		err := pool.QueryRow(ctx,
			`INSERT INTO terms (study_set_id, term, definition, position) VALUES ($1, $2, $3, $4) RETURNING id`,
			setID, term.Term, term.Definition, term.Position,
		).Scan(&term.ID)
		if err != nil {
			t.Fatalf("testhelper: SeedStudySet insert term: %v", err)
		}
		terms = append(terms, term)
	}

	return setID, terms
}

// SeedCapitals creates a set of three capital cities.
func SeedCapitals(t *testing.T, pool *pgxpool.Pool) (int64, []domain.Term) {
	t.Helper()
	return SeedStudySet(t, pool,
		[2]string{"Paris", "capital of France"},
		[2]string{"Rome", "capital of Italy"},
		[2]string{"Berlin", "capital of Germany"},
	)
}

// SeedSession creates an open study session and returns its id.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID, studySetID int64, mode domain.StudyMode) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO study_sessions (user_id, study_set_id, mode) VALUES ($1, $2, $3) RETURNING id`,
		userID, studySetID, string(mode),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedSession: %v", err)
	}
	return id
}
