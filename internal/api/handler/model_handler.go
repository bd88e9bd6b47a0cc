package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/blaisecz/bedtime-estimator/internal/service"
	"github.com/blaisecz/bedtime-estimator/pkg/problem"
)

type ModelHandler struct {
	service service.ModelService
}

func NewModelHandler(service service.ModelService) *ModelHandler {
	return &ModelHandler{service: service}
}

// List handles GET /v1/models
// @Summary List model artifacts
// @Description Registered regression artifacts, newest first.
// @Tags models
// @Produce json
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.ModelArtifactList
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 503 {object} problem.Problem "No database configured"
// @Failure 500 {object} problem.Problem
// @Router /models [get]
func (h *ModelHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseModelFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeModelError(w, err, "Failed to list model artifacts")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Active handles GET /v1/models/active
// @Summary Active model artifact
// @Description The artifact the registry marks as active.
// @Tags models
// @Produce json
// @Success 200 {object} domain.ModelArtifact
// @Failure 404 {object} problem.Problem "No active artifact"
// @Failure 503 {object} problem.Problem "No database configured"
// @Failure 500 {object} problem.Problem
// @Router /models/active [get]
func (h *ModelHandler) Active(w http.ResponseWriter, r *http.Request) {
	artifact, err := h.service.Active(r.Context())
	if err != nil {
		writeModelError(w, err, "Failed to get active model artifact")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(artifact)
}

func writeModelError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrRegistryUnavailable):
		problem.ServiceUnavailable("registry-unavailable", "Model registry is not configured").Write(w)
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("No active model artifact").Write(w)
	case errors.Is(err, domain.ErrInvalidCursor):
		problem.ValidationError("Invalid query parameters", []problem.FieldError{
			{Field: "cursor", Message: "is invalid"},
		}).Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}

func parseModelFilter(r *http.Request) (domain.ModelArtifactFilter, []problem.FieldError) {
	var filter domain.ModelArtifactFilter
	var fieldErrors []problem.FieldError

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
