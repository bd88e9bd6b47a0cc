package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/blaisecz/bedtime-estimator/internal/regression"
	"github.com/blaisecz/bedtime-estimator/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates or updates the registry table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.ModelArtifact{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Run registers the built-in artifact and makes it active. Safe to call multiple times.
func Run(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	if err := Migrate(db); err != nil {
		return err
	}
	return Artifact(ctx, repository.NewModelArtifactRepository(db), regression.DefaultArtifact(), log)
}

// Artifact upserts a by name and version, then activates it.
func Artifact(ctx context.Context, repo repository.ModelArtifactRepository, a regression.Artifact, log *zap.Logger) error {
	if err := a.Validate(); err != nil {
		return err
	}

	row, err := repo.GetByNameVersion(ctx, a.Name, a.Version)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	switch {
	case row == nil:
		row = repository.FromArtifact(a)
		if err := repo.Create(ctx, row); err != nil {
			return fmt.Errorf("failed to create artifact %s@%s: %w", a.Name, a.Version, err)
		}
	case repository.ToArtifact(row) != a:
		log.Warn("artifact coefficients changed without a version bump, overwriting",
			zap.String("artifact", a.Name),
			zap.String("version", a.Version),
			zap.Any("stored", repository.ToArtifact(row)),
			zap.Any("new", a))
		row.Intercept = a.Intercept
		row.Wake = a.Wake
		row.EstimatedSleep = a.EstimatedSleep
		row.Coffee = a.Coffee
		if err := repo.UpdateCoefficients(ctx, row); err != nil {
			return fmt.Errorf("failed to update artifact %s@%s: %w", a.Name, a.Version, err)
		}
	}

	if err := repo.Activate(ctx, row.ID); err != nil {
		return fmt.Errorf("failed to activate artifact %s@%s: %w", a.Name, a.Version, err)
	}

	log.Info("seed completed",
		zap.String("artifact", a.Name),
		zap.String("version", a.Version),
		zap.String("id", row.ID.String()))
	return nil
}
