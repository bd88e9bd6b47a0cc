package regression

import (
	"context"
	"sync"
	"time"
)

// LoadFunc builds the underlying predictor.
type LoadFunc func(ctx context.Context) (Predictor, error)

// Lazy loads its predictor on first use and keeps it for the life of the process.
// A failed load is remembered, so later calls report the same error without reloading.
// With a retry interval set, the next call after the interval attempts the load again.
type Lazy struct {
	load       LoadFunc
	retryAfter time.Duration
	now        func() time.Time

	mu        sync.Mutex
	predictor Predictor
	err       error
	failedAt  time.Time
}

func NewLazy(load LoadFunc) *Lazy {
	return &Lazy{load: load, now: time.Now}
}

// WithRetryAfter lets a failed load be attempted again once d has passed.
// Zero keeps the first failure until restart.
func (l *Lazy) WithRetryAfter(d time.Duration) *Lazy {
	l.retryAfter = d
	return l
}

// Preload forces the load. Useful at startup to surface a broken artifact early.
func (l *Lazy) Preload(ctx context.Context) error {
	_, err := l.get(ctx)
	return err
}

func (l *Lazy) Predict(ctx context.Context, f Features) (Prediction, error) {
	p, err := l.get(ctx)
	if err != nil {
		return Prediction{}, err
	}
	return p.Predict(ctx, f)
}

func (l *Lazy) get(ctx context.Context) (Predictor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.predictor != nil {
		return l.predictor, nil
	}
	if l.err != nil && (l.retryAfter <= 0 || l.now().Sub(l.failedAt) < l.retryAfter) {
		return nil, l.err
	}

	p, err := l.load(ctx)
	if err == nil && p == nil {
		err = ErrInvalidArtifact
	}
	if err != nil {
		l.err = err
		l.failedAt = l.now()
		return nil, err
	}

	l.predictor, l.err = p, nil
	return p, nil
}

