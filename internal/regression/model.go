// Package regression holds the bedtime model: the feature/prediction types, the Predictor contract and
// a linear implementation backed by a JSON artifact.
package regression

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

var (
	// ErrInvalidArtifact indicates a missing, unreadable or malformed model artifact.
	ErrInvalidArtifact = errors.New("invalid model artifact")
	// ErrInvalidFeatures indicates feature values the model refuses to score.
	ErrInvalidFeatures = errors.New("invalid model features")
	// ErrInvalidPrediction indicates the model produced a non-finite value.
	ErrInvalidPrediction = errors.New("invalid model prediction")
)

const secondsPerDay = 24 * 60 * 60

// Features are the three model inputs, all as real numbers.
type Features struct {
	// Wake is the wake-up time in seconds since midnight.
	Wake float64 `json:"wake"`
	// EstimatedSleep is the desired amount of sleep in hours.
	EstimatedSleep float64 `json:"estimated_sleep"`
	// Coffee is the daily coffee intake in cups.
	Coffee float64 `json:"coffee"`
}

// Prediction is the model output.
type Prediction struct {
	// ActualSleep is the sleep the user actually needs, in hours.
	ActualSleep float64 `json:"actual_sleep"`
}

// Predictor is the single operation the estimator needs from a model.
type Predictor interface {
	Predict(ctx context.Context, f Features) (Prediction, error)
}

// Artifact is a trained linear regression over the three features.
type Artifact struct {
	Name           string  `json:"name"`
	Version        string  `json:"version"`
	Intercept      float64 `json:"intercept"`
	Wake           float64 `json:"wake"`
	EstimatedSleep float64 `json:"estimated_sleep"`
	Coffee         float64 `json:"coffee"`
}

// DefaultArtifact is the built-in SleepCalculator: desired sleep plus 0.2h per cup of coffee.
func DefaultArtifact() Artifact {
	return Artifact{
		Name:           "SleepCalculator",
		Version:        "1",
		Intercept:      0,
		Wake:           0,
		EstimatedSleep: 1.0,
		Coffee:         0.2,
	}
}

// Validate checks the artifact is usable for prediction.
func (a Artifact) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArtifact)
	}
	for field, v := range map[string]float64{
		"intercept":       a.Intercept,
		"wake":            a.Wake,
		"estimated_sleep": a.EstimatedSleep,
		"coffee":          a.Coffee,
	} {
		if !isFinite(v) {
			return fmt.Errorf("%w: %s coefficient is not finite", ErrInvalidArtifact, field)
		}
	}
	return nil
}

// LoadArtifact reads a JSON artifact from disk.
func LoadArtifact(path string) (Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return Artifact{}, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	if err := a.Validate(); err != nil {
		return Artifact{}, err
	}
	return a, nil
}

// LinearModel scores features against an artifact. It is immutable and safe for concurrent use.
type LinearModel struct {
	artifact Artifact
}

// NewLinearModel validates the artifact and wraps it.
func NewLinearModel(a Artifact) (*LinearModel, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &LinearModel{artifact: a}, nil
}

// Artifact returns the coefficients the model was built from.
func (m *LinearModel) Artifact() Artifact {
	return m.artifact
}

func (m *LinearModel) Predict(ctx context.Context, f Features) (Prediction, error) {
	if err := ctx.Err(); err != nil {
		return Prediction{}, err
	}
	if err := f.validate(); err != nil {
		return Prediction{}, err
	}

	a := m.artifact
	actual := a.Intercept + a.Wake*f.Wake + a.EstimatedSleep*f.EstimatedSleep + a.Coffee*f.Coffee
	if !isFinite(actual) {
		return Prediction{}, ErrInvalidPrediction
	}
	return Prediction{ActualSleep: actual}, nil
}

func (f Features) validate() error {
	if !isFinite(f.Wake) || !isFinite(f.EstimatedSleep) || !isFinite(f.Coffee) {
		return fmt.Errorf("%w: values must be finite", ErrInvalidFeatures)
	}
	if f.Wake < 0 || f.Wake >= secondsPerDay {
		return fmt.Errorf("%w: wake must be within one day", ErrInvalidFeatures)
	}
	if f.EstimatedSleep < 0 || f.Coffee < 0 {
		return fmt.Errorf("%w: values must not be negative", ErrInvalidFeatures)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
