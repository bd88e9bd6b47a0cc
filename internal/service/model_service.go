package service

import (
	"context"

	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/blaisecz/bedtime-estimator/internal/repository"
	"github.com/blaisecz/bedtime-estimator/pkg/pagination"
)

// ModelService is a read-only view of the artifact registry.
type ModelService interface {
	List(ctx context.Context, filter domain.ModelArtifactFilter) (*domain.ModelArtifactList, error)
	Active(ctx context.Context) (*domain.ModelArtifact, error)
}

type modelService struct {
	repo repository.ModelArtifactRepository
}

// NewModelService creates a ModelService. A nil repo means no database is configured.
func NewModelService(repo repository.ModelArtifactRepository) ModelService {
	return &modelService{repo: repo}
}

func (s *modelService) List(ctx context.Context, filter domain.ModelArtifactFilter) (*domain.ModelArtifactList, error) {
	if s.repo == nil {
		return nil, domain.ErrRegistryUnavailable
	}

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	data, next := pagination.Page(rows, filter.Limit, func(a domain.ModelArtifact) pagination.Cursor {
		return pagination.Cursor{ID: a.ID, CreatedAt: a.CreatedAt}
	})
	if data == nil {
		data = []domain.ModelArtifact{}
	}

	return &domain.ModelArtifactList{Data: data, NextCursor: next}, nil
}

func (s *modelService) Active(ctx context.Context) (*domain.ModelArtifact, error) {
	if s.repo == nil {
		return nil, domain.ErrRegistryUnavailable
	}
	return s.repo.GetActive(ctx)
}
