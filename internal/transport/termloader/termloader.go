// Package termloader provides a per-request DataLoader that batches term
// lookups made while rendering progress and review responses into a single
// SQL call. It reads the term store directly, bypassing the service layer.
package termloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/studyset-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type termRepo interface {
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Term, error)
}

// Loaders holds the per-request loader instances. Created per-request via NewLoaders.
type Loaders struct {
	TermByID *dataloader.Loader[int64, *domain.Term]
}

// NewLoaders creates a new set of DataLoaders backed by the term store.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repo termRepo) *Loaders {
	return &Loaders{
		TermByID: dataloader.NewBatchedLoader(
			newTermsBatchFn(repo),
			dataloader.WithWait[int64, *domain.Term](wait),
			dataloader.WithBatchCapacity[int64, *domain.Term](maxBatch),
		),
	}
}

// newTermsBatchFn resolves a batch of term ids. Ids without a row resolve to nil.
func newTermsBatchFn(repo termRepo) dataloader.BatchFunc[int64, *domain.Term] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Term] {
		terms, err := repo.ListByIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.Term], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.Term]{Error: err}
			}
			return results
		}

		byID := make(map[int64]*domain.Term, len(terms))
		for i := range terms {
			byID[terms[i].ID] = &terms[i]
		}

		results := make([]*dataloader.Result[*domain.Term], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Term]{Data: byID[key]}
		}
		return results
	}
}

// LoadTerms resolves all ids through the loader. The result is keyed by id;
// ids with no term are absent.
func (l *Loaders) LoadTerms(ctx context.Context, ids []int64) (map[int64]*domain.Term, error) {
	thunks := make([]dataloader.Thunk[*domain.Term], len(ids))
	for i, id := range ids {
		thunks[i] = l.TermByID.Load(ctx, id)
	}

	out := make(map[int64]*domain.Term, len(ids))
	for i, thunk := range thunks {
		t, err := thunk()
		if err != nil {
			return nil, err
		}
		if t != nil {
			out[ids[i]] = t
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "termloader"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("termloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
