package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blaisecz/bedtime-estimator/internal/api/handler"
	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/blaisecz/bedtime-estimator/internal/regression"
	"github.com/blaisecz/bedtime-estimator/internal/service"
	"go.uber.org/zap"
)

type failingPredictor struct{}

func (failingPredictor) Predict(ctx context.Context, f regression.Features) (regression.Prediction, error) {
	return regression.Prediction{}, regression.ErrInvalidArtifact
}

func newTestRouter(t *testing.T, model regression.Predictor) http.Handler {
	t.Helper()
	log := zap.NewNop()
	estimator := service.NewEstimatorService(model, domain.Clock12h, log)
	return NewRouter(
		handler.NewEstimateHandler(estimator),
		handler.NewModelHandler(service.NewModelService(nil)),
		handler.NewMCPHandler(estimator, log),
		log,
	).Setup()
}

func defaultModel(t *testing.T) regression.Predictor {
	t.Helper()
	model, err := regression.NewLinearModel(regression.DefaultArtifact())
	if err != nil {
		t.Fatalf("failed to build default model: %v", err)
	}
	return model
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t, defaultModel(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"status":"ok"}` {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestRouter_EstimateEndToEnd(t *testing.T) {
	body := `{"wakeHour": 7, "wakeMinute": 0, "sleepHours": 8, "coffeeCups": 1}`
	rec := httptest.NewRecorder()
	newTestRouter(t, defaultModel(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/estimate", bytes.NewBufferString(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp domain.EstimateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Bedtime != "10:48 PM" || resp.BedtimeHour != 22 || resp.BedtimeMinute != 48 {
		t.Errorf("unexpected bedtime %+v", resp)
	}
	if resp.Title != domain.ResultTitle {
		t.Errorf("expected title %q, got %q", domain.ResultTitle, resp.Title)
	}
}

func TestRouter_EstimatePredictionFailed(t *testing.T) {
	body := `{"wakeHour": 7, "wakeMinute": 0, "sleepHours": 8, "coffeeCups": 1}`
	rec := httptest.NewRecorder()
	newTestRouter(t, failingPredictor{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/estimate", bytes.NewBufferString(body)))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), domain.PredictionFailedMessage) {
		t.Errorf("expected generic failure message, got %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), regression.ErrInvalidArtifact.Error()) {
		t.Error("model error leaked into response")
	}
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t, defaultModel(t))

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/v1/estimate/defaults", "", http.StatusOK},
		{http.MethodGet, "/v1/models", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/v1/models/active", "", http.StatusServiceUnavailable},
		{http.MethodPost, "/mcp", `{"name":"estimate_bedtime","arguments":{"wake_hour":7,"wake_minute":0,"sleep_hours":8,"coffee_cups":1}}`, http.StatusOK},
		{http.MethodGet, "/v1/estimate", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/v1/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body)))
			if rec.Code != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, rec.Code)
			}
		})
	}
}
