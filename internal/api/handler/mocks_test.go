package handler

import (
	"context"

	"github.com/blaisecz/bedtime-estimator/internal/domain"
)

// MockEstimatorService is a mock implementation of EstimatorService
type MockEstimatorService struct {
	estimateFunc func(ctx context.Context, in domain.EstimateInput) (*domain.BedtimeEstimate, error)
	lastInput    *domain.EstimateInput
}

func (m *MockEstimatorService) Estimate(ctx context.Context, in domain.EstimateInput) (*domain.BedtimeEstimate, error) {
	m.lastInput = &in
	if m.estimateFunc != nil {
		return m.estimateFunc(ctx, in)
	}
	return &domain.BedtimeEstimate{
		Hour:                22,
		Minute:              48,
		Formatted:           "10:48 PM",
		PredictedSleepHours: 8.2,
		DaysBefore:          1,
	}, nil
}

// MockModelService is a mock implementation of ModelService
type MockModelService struct {
	listFunc   func(ctx context.Context, filter domain.ModelArtifactFilter) (*domain.ModelArtifactList, error)
	activeFunc func(ctx context.Context) (*domain.ModelArtifact, error)
}

func (m *MockModelService) List(ctx context.Context, filter domain.ModelArtifactFilter) (*domain.ModelArtifactList, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.ModelArtifactList{Data: []domain.ModelArtifact{}}, nil
}

func (m *MockModelService) Active(ctx context.Context) (*domain.ModelArtifact, error) {
	if m.activeFunc != nil {
		return m.activeFunc(ctx)
	}
	return nil, domain.ErrNotFound
}
