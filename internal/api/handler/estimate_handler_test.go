package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/blaisecz/bedtime-estimator/pkg/problem"
)

func TestEstimateHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockEstimatorService
		wantStatusCode int
		wantType       string
	}{
		{
			name:           "valid request",
			body:           `{"wakeHour": 7, "wakeMinute": 0, "sleepHours": 8, "coffeeCups": 1}`,
			mockService:    &MockEstimatorService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "boundary values",
			body:           `{"wakeHour": 23, "wakeMinute": 59, "sleepHours": 12, "coffeeCups": 20}`,
			mockService:    &MockEstimatorService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "zero values are present",
			body:           `{"wakeHour": 0, "wakeMinute": 0, "sleepHours": 4, "coffeeCups": 0}`,
			mockService:    &MockEstimatorService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockEstimatorService{},
			wantStatusCode: http.StatusBadRequest,
			wantType:       "bad-request",
		},
		{
			name:           "missing fields",
			body:           `{}`,
			mockService:    &MockEstimatorService{},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantType:       "validation-error",
		},
		{
			name:           "sleep off step",
			body:           `{"wakeHour": 7, "wakeMinute": 0, "sleepHours": 8.1, "coffeeCups": 1}`,
			mockService:    &MockEstimatorService{},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantType:       "validation-error",
		},
		{
			name:           "too much coffee",
			body:           `{"wakeHour": 7, "wakeMinute": 0, "sleepHours": 8, "coffeeCups": 21}`,
			mockService:    &MockEstimatorService{},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantType:       "validation-error",
		},
		{
			name: "prediction failed",
			body: `{"wakeHour": 7, "wakeMinute": 0, "sleepHours": 8, "coffeeCups": 1}`,
			mockService: &MockEstimatorService{
				estimateFunc: func(ctx context.Context, in domain.EstimateInput) (*domain.BedtimeEstimate, error) {
					return nil, domain.ErrPredictionFailed
				},
			},
			wantStatusCode: http.StatusInternalServerError,
			wantType:       "prediction-failed",
		},
		{
			name: "unexpected error",
			body: `{"wakeHour": 7, "wakeMinute": 0, "sleepHours": 8, "coffeeCups": 1}`,
			mockService: &MockEstimatorService{
				estimateFunc: func(ctx context.Context, in domain.EstimateInput) (*domain.BedtimeEstimate, error) {
					return nil, errors.New("boom")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
			wantType:       "internal-error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewEstimateHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/estimate", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatusCode, rec.Code, rec.Body.String())
			}

			if tt.wantType != "" {
				var p problem.Problem
				if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
					t.Fatalf("failed to decode problem: %v", err)
				}
				if p.Type != problem.BaseURI+"/"+tt.wantType {
					t.Errorf("expected type %s, got %s", tt.wantType, p.Type)
				}
			}
		})
	}
}

func TestEstimateHandler_Create_Response(t *testing.T) {
	mock := &MockEstimatorService{}
	handler := NewEstimateHandler(mock)

	body := `{"wakeHour": 7, "wakeMinute": 0, "sleepHours": 8, "coffeeCups": 1}`
	req := httptest.NewRequest(http.MethodPost, "/v1/estimate", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	want := domain.EstimateInput{Wake: domain.WakeTime{Hour: 7}, SleepAmount: 8, CoffeeIntake: 1}
	if mock.lastInput == nil || *mock.lastInput != want {
		t.Errorf("service called with %+v, want %+v", mock.lastInput, want)
	}

	var resp domain.EstimateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Title != domain.ResultTitle {
		t.Errorf("unexpected title %q", resp.Title)
	}
	if resp.Bedtime != "10:48 PM" || resp.BedtimeHour != 22 || resp.BedtimeMinute != 48 {
		t.Errorf("unexpected bedtime %+v", resp)
	}
}

func TestEstimateHandler_Create_PredictionFailedBody(t *testing.T) {
	mock := &MockEstimatorService{
		estimateFunc: func(ctx context.Context, in domain.EstimateInput) (*domain.BedtimeEstimate, error) {
			return nil, domain.ErrPredictionFailed
		},
	}
	handler := NewEstimateHandler(mock)

	body := `{"wakeHour": 7, "wakeMinute": 0, "sleepHours": 8, "coffeeCups": 1}`
	rec := httptest.NewRecorder()
	handler.Create(rec, httptest.NewRequest(http.MethodPost, "/v1/estimate", bytes.NewBufferString(body)))

	var p problem.Problem
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("failed to decode problem: %v", err)
	}
	if p.Title != "Error" {
		t.Errorf("expected title Error, got %q", p.Title)
	}
	if p.Detail != "Sorry, there was a problem calculating your bedtime." {
		t.Errorf("unexpected detail %q", p.Detail)
	}
}

func TestEstimateHandler_Defaults(t *testing.T) {
	handler := NewEstimateHandler(&MockEstimatorService{})

	rec := httptest.NewRecorder()
	handler.Defaults(rec, httptest.NewRequest(http.MethodGet, "/v1/estimate/defaults", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var defaults domain.FormDefaults
	if err := json.NewDecoder(rec.Body).Decode(&defaults); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if defaults.WakeHour != 7 || defaults.SleepHours != 8 || defaults.CoffeeCups != 1 {
		t.Errorf("unexpected defaults %+v", defaults)
	}
	if len(defaults.CupLabels) != 21 || defaults.CupLabels[1].Label != "1 cup" {
		t.Errorf("unexpected cup labels %+v", defaults.CupLabels)
	}
}
