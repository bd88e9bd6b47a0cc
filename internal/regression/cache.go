package regression

import (
	"context"

	"github.com/maypok86/otter/v2"
)

// Cached memoises predictions of a deterministic predictor keyed by the exact feature values.
// Errors are never cached.
type Cached struct {
	next  Predictor
	cache *otter.Cache[Features, Prediction]
}

// NewCached wraps next with a bounded cache. A size of zero disables caching.
func NewCached(next Predictor, size int) Predictor {
	if size <= 0 {
		return next
	}

	cache := otter.Must(&otter.Options[Features, Prediction]{
		MaximumSize: size,
	})

	return &Cached{next: next, cache: cache}
}

func (c *Cached) Predict(ctx context.Context, f Features) (Prediction, error) {
	if p, ok := c.cache.GetIfPresent(f); ok {
		return p, nil
	}

	p, err := c.next.Predict(ctx, f)
	if err != nil {
		return Prediction{}, err
	}

	c.cache.Set(f, p)
	return p, nil
}
