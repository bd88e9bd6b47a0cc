package service

import (
	"context"
	"time"

	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/google/uuid"
)

// MockModelArtifactRepository is a mock implementation of ModelArtifactRepository
type MockModelArtifactRepository struct {
	artifacts  map[uuid.UUID]*domain.ModelArtifact
	listResult []domain.ModelArtifact
	lastFilter domain.ModelArtifactFilter
	err        error
}

func NewMockModelArtifactRepository() *MockModelArtifactRepository {
	return &MockModelArtifactRepository{
		artifacts: make(map[uuid.UUID]*domain.ModelArtifact),
	}
}

func (m *MockModelArtifactRepository) Create(ctx context.Context, artifact *domain.ModelArtifact) error {
	if m.err != nil {
		return m.err
	}
	if artifact.ID == uuid.Nil {
		artifact.ID = uuid.New()
	}
	artifact.CreatedAt = time.Now()
	m.artifacts[artifact.ID] = artifact
	return nil
}

func (m *MockModelArtifactRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelArtifact, error) {
	if m.err != nil {
		return nil, m.err
	}
	if a, ok := m.artifacts[id]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockModelArtifactRepository) GetByNameVersion(ctx context.Context, name, version string) (*domain.ModelArtifact, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, a := range m.artifacts {
		if a.Name == name && a.Version == version {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockModelArtifactRepository) GetActive(ctx context.Context) (*domain.ModelArtifact, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, a := range m.artifacts {
		if a.Active {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockModelArtifactRepository) UpdateCoefficients(ctx context.Context, artifact *domain.ModelArtifact) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.artifacts[artifact.ID]; !ok {
		return domain.ErrNotFound
	}
	m.artifacts[artifact.ID] = artifact
	return nil
}

func (m *MockModelArtifactRepository) Activate(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.artifacts[id]; !ok {
		return domain.ErrNotFound
	}
	for key, a := range m.artifacts {
		a.Active = key == id
	}
	return nil
}

func (m *MockModelArtifactRepository) List(ctx context.Context, filter domain.ModelArtifactFilter) ([]domain.ModelArtifact, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.listResult, nil
}
