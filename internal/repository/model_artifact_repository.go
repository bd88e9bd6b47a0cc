package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/blaisecz/bedtime-estimator/internal/regression"
	"github.com/blaisecz/bedtime-estimator/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModelArtifactRepository interface {
	Create(ctx context.Context, artifact *domain.ModelArtifact) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelArtifact, error)
	GetByNameVersion(ctx context.Context, name, version string) (*domain.ModelArtifact, error)
	GetActive(ctx context.Context) (*domain.ModelArtifact, error)
	UpdateCoefficients(ctx context.Context, artifact *domain.ModelArtifact) error
	Activate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.ModelArtifactFilter) ([]domain.ModelArtifact, error)
}

type modelArtifactRepository struct {
	db *gorm.DB
}

func NewModelArtifactRepository(db *gorm.DB) ModelArtifactRepository {
	return &modelArtifactRepository{db: db}
}

func (r *modelArtifactRepository) Create(ctx context.Context, artifact *domain.ModelArtifact) error {
	return r.db.WithContext(ctx).Create(artifact).Error
}

func (r *modelArtifactRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelArtifact, error) {
	var artifact domain.ModelArtifact
	err := r.db.WithContext(ctx).First(&artifact, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &artifact, nil
}

func (r *modelArtifactRepository) GetByNameVersion(ctx context.Context, name, version string) (*domain.ModelArtifact, error) {
	var artifact domain.ModelArtifact
	err := r.db.WithContext(ctx).
		Where("name = ? AND version = ?", name, version).
		First(&artifact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &artifact, nil
}

func (r *modelArtifactRepository) GetActive(ctx context.Context) (*domain.ModelArtifact, error) {
	var artifact domain.ModelArtifact
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		First(&artifact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &artifact, nil
}

// UpdateCoefficients overwrites the stored coefficients of artifact. Zero coefficients are written too.
func (r *modelArtifactRepository) UpdateCoefficients(ctx context.Context, artifact *domain.ModelArtifact) error {
	res := r.db.WithContext(ctx).
		Model(&domain.ModelArtifact{}).
		Where("id = ?", artifact.ID).
		Updates(map[string]any{
			"intercept":       artifact.Intercept,
			"wake":            artifact.Wake,
			"estimated_sleep": artifact.EstimatedSleep,
			"coffee":          artifact.Coffee,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Activate marks id as the only active artifact.
func (r *modelArtifactRepository) Activate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.ModelArtifact{}).Where("id = ?", id).Update("active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Model(&domain.ModelArtifact{}).
			Where("id <> ? AND active = ?", id, true).
			Update("active", false).Error
	})
}

func (r *modelArtifactRepository) List(ctx context.Context, filter domain.ModelArtifactFilter) ([]domain.ModelArtifact, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC, id DESC")

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, domain.ErrInvalidCursor
		}
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	// One extra row tells the caller whether another page exists.
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var artifacts []domain.ModelArtifact
	if err := query.Find(&artifacts).Error; err != nil {
		return nil, err
	}
	return artifacts, nil
}

// ArtifactStore adapts the repository to regression.ArtifactStore.
type ArtifactStore struct {
	repo ModelArtifactRepository
}

func NewArtifactStore(repo ModelArtifactRepository) *ArtifactStore {
	return &ArtifactStore{repo: repo}
}

func (s *ArtifactStore) ActiveArtifact(ctx context.Context) (regression.Artifact, error) {
	row, err := s.repo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return regression.Artifact{}, regression.ErrNoArtifact
		}
		return regression.Artifact{}, err
	}
	return ToArtifact(row), nil
}

// ToArtifact converts a stored row into the model's artifact form.
func ToArtifact(row *domain.ModelArtifact) regression.Artifact {
	return regression.Artifact{
		Name:           row.Name,
		Version:        row.Version,
		Intercept:      row.Intercept,
		Wake:           row.Wake,
		EstimatedSleep: row.EstimatedSleep,
		Coffee:         row.Coffee,
	}
}

// FromArtifact builds an inactive row for a. The caller decides whether to activate it.
func FromArtifact(a regression.Artifact) *domain.ModelArtifact {
	return &domain.ModelArtifact{
		Name:           a.Name,
		Version:        a.Version,
		Intercept:      a.Intercept,
		Wake:           a.Wake,
		EstimatedSleep: a.EstimatedSleep,
		Coffee:         a.Coffee,
	}
}
