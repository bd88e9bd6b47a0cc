package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/bedtime-estimator/internal/api/validation"
	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/blaisecz/bedtime-estimator/internal/service"
	"github.com/blaisecz/bedtime-estimator/pkg/problem"
)

// @title Bedtime Estimator API
// @version 1.0
// @description Recommends a bedtime from a wake-up time, a desired amount of sleep and daily coffee intake.
// @BasePath /v1

type EstimateHandler struct {
	service service.EstimatorService
}

func NewEstimateHandler(service service.EstimatorService) *EstimateHandler {
	return &EstimateHandler{service: service}
}

// Create handles POST /v1/estimate
// @Summary Estimate bedtime
// @Description Predicts the sleep actually needed and subtracts it from the wake-up time.
// @Description The result is a time of day only.
// @Tags estimate
// @Accept json
// @Produce json
// @Param request body domain.EstimateRequest true "Estimate inputs"
// @Success 200 {object} domain.EstimateResponse
// @Failure 400 {object} problem.Problem "Malformed JSON"
// @Failure 422 {object} problem.Problem "Input out of range"
// @Failure 500 {object} problem.Problem "Prediction failed"
// @Router /estimate [post]
func (h *EstimateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	estimate, err := h.service.Estimate(r.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, domain.ErrPredictionFailed) {
			problem.PredictionFailed(domain.ErrorTitle, domain.PredictionFailedMessage).Write(w)
			return
		}
		problem.InternalError("Failed to estimate bedtime").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(estimate.ToResponse())
}

// Defaults handles GET /v1/estimate/defaults
// @Summary Form defaults
// @Description Default values, allowed ranges and labels for the estimate inputs.
// @Tags estimate
// @Produce json
// @Success 200 {object} domain.FormDefaults
// @Router /estimate/defaults [get]
func (h *EstimateHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.Defaults())
}
