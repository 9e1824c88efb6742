// Package dataloader provides per-request DataLoaders that batch the
// lookups a single HTTP response needs into one query each.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/qa-moderation/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type ratingSource interface {
	ReviewerRatings(ctx context.Context, reviewers []string) (map[string]float64, error)
}

// Sources holds the backends the loaders batch against.
type Sources struct {
	Ratings ratingSource
}

// Loaders contains the per-request DataLoaders. Created per-request via
// NewLoaders.
type Loaders struct {
	RatingByReviewer *dataloader.Loader[string, domain.Optional[float64]]
}

// NewLoaders creates a new set of DataLoaders backed by the given sources.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(src *Sources) *Loaders {
	return &Loaders{
		RatingByReviewer: newLoader(newRatingBatchFn(src.Ratings)),
	}
}

func newLoader[K comparable, V any](batchFn dataloader.BatchFunc[K, V]) *dataloader.Loader[K, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[K, V](wait),
		dataloader.WithBatchCapacity[K, V](maxBatch),
	)
}

func newRatingBatchFn(src ratingSource) dataloader.BatchFunc[string, domain.Optional[float64]] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[domain.Optional[float64]] {
		ratings, err := src.ReviewerRatings(ctx, keys)
		if err != nil {
			return errorResults[domain.Optional[float64]](len(keys), err)
		}

		results := make([]*dataloader.Result[domain.Optional[float64]], len(keys))
		for i, reviewer := range keys {
			rating := domain.None[float64]()
			if r, ok := ratings[reviewer]; ok {
				rating = domain.Some(r)
			}
			results[i] = &dataloader.Result[domain.Optional[float64]]{Data: rating}
		}
		return results
	}
}

// errorResults returns n results carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// RatingsFor loads ratings for every reviewer in one batch. Reviewers without
// a rating map to an unset Optional.
func (l *Loaders) RatingsFor(ctx context.Context, reviewers []string) (map[string]domain.Optional[float64], error) {
	thunks := make(map[string]dataloader.Thunk[domain.Optional[float64]], len(reviewers))
	for _, r := range reviewers {
		if _, ok := thunks[r]; !ok {
			thunks[r] = l.RatingByReviewer.Load(ctx, r)
		}
	}

	out := make(map[string]domain.Optional[float64], len(thunks))
	for r, thunk := range thunks {
		rating, err := thunk()
		if err != nil {
			return nil, err
		}
		out[r] = rating
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
