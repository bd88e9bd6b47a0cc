// Script to register a model artifact in the registry and make it active.
// Usage: go run scripts/seed/main.go [artifact.json]
// Without an argument the built-in artifact is registered.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/blaisecz/bedtime-estimator/internal/config"
	"github.com/blaisecz/bedtime-estimator/internal/logger"
	"github.com/blaisecz/bedtime-estimator/internal/regression"
	"github.com/blaisecz/bedtime-estimator/internal/repository"
	"github.com/blaisecz/bedtime-estimator/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	artifact := regression.DefaultArtifact()
	if len(os.Args) > 1 {
		artifact, err = regression.LoadArtifact(os.Args[1])
		if err != nil {
			log.Fatal("failed to read artifact", zap.String("path", os.Args[1]), zap.Error(err))
		}
	}

	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := seed.Migrate(db); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	ctx := context.Background()
	if err := seed.Artifact(ctx, repository.NewModelArtifactRepository(db), artifact, log); err != nil {
		log.Fatal("failed to register artifact", zap.Error(err))
	}
}
