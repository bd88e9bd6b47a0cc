package domain

import "errors"

// PredictionFailedMessage is the only detail callers ever see when an estimate cannot be produced.
const PredictionFailedMessage = "Sorry, there was a problem calculating your bedtime."

var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidCursor       = errors.New("invalid cursor")
	ErrPredictionFailed    = errors.New("prediction failed")
	ErrRegistryUnavailable = errors.New("model registry unavailable")
)
