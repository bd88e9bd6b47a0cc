package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/bedtime-estimator/internal/langfuse"
	"github.com/blaisecz/bedtime-estimator/internal/regression"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultSystemPrompt is used when no prompt is managed in Langfuse.
const DefaultSystemPrompt = `You are a sleep regression model.

You receive three features for one person:
- "wake": desired wake-up time in seconds after midnight,
- "estimated_sleep": the amount of sleep they want, in hours,
- "coffee": cups of coffee they drink per day.

Estimate how many hours of sleep they actually need to wake up rested.
Caffeine increases the sleep needed; the result is usually close to "estimated_sleep".

You must respond as strict JSON with exactly this shape:

{"actual_sleep": <number of hours>}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Features:

%s

Respond in the required JSON format.`

// ChatCompleter is the slice of the OpenAI client the predictor uses.
type ChatCompleter interface {
	Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error)
}

// SleepPredictor implements regression.Predictor on top of a chat model.
type SleepPredictor struct {
	chat         ChatCompleter
	model        string
	systemPrompt string
	tracer       langfuse.Client
}

// NewSleepPredictor creates a predictor backed by OpenAI.
// Returns nil if apiKey is empty.
func NewSleepPredictor(apiKey, model, systemPrompt string, tracer langfuse.Client) *SleepPredictor {
	if apiKey == "" {
		return nil
	}

	// Estimation is fail-fast; the SDK's own retries are turned off.
	client := openai.NewClient(option.WithAPIKey(apiKey), option.WithMaxRetries(0))

	return newSleepPredictor(&openAIChat{client: client}, model, systemPrompt, tracer)
}

func newSleepPredictor(chat ChatCompleter, model, systemPrompt string, tracer langfuse.Client) *SleepPredictor {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultSystemPrompt
	}

	return &SleepPredictor{
		chat:         chat,
		model:        model,
		systemPrompt: systemPrompt,
		tracer:       tracer,
	}
}

// Predict asks the chat model for the actual sleep needed.
func (p *SleepPredictor) Predict(ctx context.Context, f regression.Features) (regression.Prediction, error) {
	if p == nil {
		return regression.Prediction{}, ErrOpenAIUnavailable
	}

	featuresJSON, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return regression.Prediction{}, fmt.Errorf("%w: failed to serialize features: %v", ErrOpenAIRequest, err)
	}

	content, err := p.chat.Complete(ctx, p.model, p.systemPrompt, fmt.Sprintf(userPromptTemplate, featuresJSON))
	if err != nil {
		return regression.Prediction{}, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	var output struct {
		ActualSleep *float64 `json:"actual_sleep"`
	}
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return regression.Prediction{}, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if output.ActualSleep == nil {
		return regression.Prediction{}, fmt.Errorf("%w: actual_sleep missing", ErrOpenAIResponse)
	}

	prediction := regression.Prediction{ActualSleep: *output.ActualSleep}

	if p.tracer != nil && p.tracer.IsEnabled() {
		_, _ = p.tracer.CreateTrace(ctx, langfuse.TraceInput{
			Name:     "bedtime-prediction",
			Input:    f,
			Output:   prediction,
			Tags:     []string{"bedtime-estimator", "openai"},
			Metadata: map[string]any{"model": p.model},
		})
	}

	return prediction, nil
}

type openAIChat struct {
	client openai.Client
}

func (c *openAIChat) Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, chatParams(model, systemPrompt, userPrompt))
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return resp.Choices[0].Message.Content, nil
}

// chatParams asks for a JSON object reply so the model cannot wrap the answer in prose or fences.
func chatParams(model, systemPrompt, userPrompt string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}
}
