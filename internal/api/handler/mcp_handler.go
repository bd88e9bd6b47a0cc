package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/blaisecz/bedtime-estimator/internal/api/validation"
	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/blaisecz/bedtime-estimator/internal/service"
	"github.com/blaisecz/bedtime-estimator/pkg/problem"
	"go.uber.org/zap"
)

// EstimateBedtimeTool is the only tool served on /mcp.
const EstimateBedtimeTool = "estimate_bedtime"

// EstimateBedtimeParams are the tool arguments.
type EstimateBedtimeParams struct {
	WakeHour   *int     `json:"wake_hour" validate:"required,min=0,max=23" description:"Desired wake-up hour (0-23)"`
	WakeMinute *int     `json:"wake_minute" validate:"required,min=0,max=59" description:"Desired wake-up minute (0-59)"`
	SleepHours *float64 `json:"sleep_hours" validate:"required,min=4,max=12,quarterstep" description:"Desired sleep in hours, 4-12 in 0.25 steps"`
	CoffeeCups *int     `json:"coffee_cups" validate:"required,min=0,max=20" description:"Cups of coffee per day (0-20)"`
}

func (p EstimateBedtimeParams) toInput() domain.EstimateInput {
	return domain.EstimateInput{
		Wake:         domain.WakeTime{Hour: *p.WakeHour, Minute: *p.WakeMinute},
		SleepAmount:  *p.SleepHours,
		CoffeeIntake: *p.CoffeeCups,
	}
}

type MCPHandler struct {
	service service.EstimatorService
	log     *zap.Logger
}

func NewMCPHandler(service service.EstimatorService, log *zap.Logger) *MCPHandler {
	return &MCPHandler{service: service, log: log}
}

// Call handles POST /mcp. It serves outside /v1 and is left out of the OpenAPI document.
// Tool failures are reported in the result with isError set; only protocol errors use problem+json.
func (h *MCPHandler) Call(w http.ResponseWriter, r *http.Request) {
	var request protocol.CallToolRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if request.Name != EstimateBedtimeTool {
		problem.NotFound("Unknown tool: " + request.Name).Write(w)
		return
	}

	result := h.estimateBedtime(r, &request)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.log.Warn("failed to encode mcp response", zap.Error(err))
	}
}

func (h *MCPHandler) estimateBedtime(r *http.Request, req *protocol.CallToolRequest) *protocol.CallToolResult {
	var params EstimateBedtimeParams
	if err := extractParams(req, &params); err != nil {
		return toolError(problem.BadRequest("Invalid tool arguments"))
	}

	if fieldErrors := validation.Validate(params); fieldErrors != nil {
		return toolError(problem.ValidationError("Tool arguments contain invalid fields", fieldErrors))
	}

	estimate, err := h.service.Estimate(r.Context(), params.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrPredictionFailed) {
			return toolError(problem.PredictionFailed(domain.ErrorTitle, domain.PredictionFailedMessage))
		}
		return toolError(problem.InternalError("Failed to estimate bedtime"))
	}

	return textResult(estimate.ToResponse(), false)
}

// extractParams round-trips the argument map through JSON into target.
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonBytes, target)
}

func toolError(p *problem.Problem) *protocol.CallToolResult {
	return textResult(p, true)
}

func textResult(data interface{}, isError bool) *protocol.CallToolResult {
	text, err := json.Marshal(data)
	if err != nil {
		text = []byte(err.Error())
		isError = true
	}
	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(text),
			},
		},
		IsError: isError,
	}
}
