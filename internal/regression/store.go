package regression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"go.uber.org/zap"
)

// ErrNoArtifact is returned by stores that have no active artifact.
var ErrNoArtifact = errors.New("no active model artifact")

// ArtifactStore is where trained artifacts are registered.
type ArtifactStore interface {
	ActiveArtifact(ctx context.Context) (Artifact, error)
}

// LoadFromStore fetches the active artifact, retrying transient store errors with backoff.
// A missing artifact or one that fails validation is not retried.
func LoadFromStore(ctx context.Context, store ArtifactStore, log *zap.Logger) (*LinearModel, error) {
	var artifact Artifact
	var lastErr error

	err := retry.Do(
		func() error {
			a, err := store.ActiveArtifact(ctx)
			if err != nil {
				lastErr = err
				if errors.Is(err, ErrNoArtifact) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			if err := a.Validate(); err != nil {
				lastErr = err
				return retry.Unrecoverable(err)
			}
			artifact = a
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(4),
		retry.Delay(250*time.Millisecond),
		retry.MaxDelay(5*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("retrying model artifact load",
				zap.Uint("attempt", n+1),
				zap.Error(err))
		}),
	)
	if err != nil {
		if lastErr == nil {
			lastErr = err
		}
		return nil, fmt.Errorf("load active artifact: %w", lastErr)
	}

	log.Info("model artifact loaded",
		zap.String("name", artifact.Name),
		zap.String("version", artifact.Version))

	return NewLinearModel(artifact)
}
