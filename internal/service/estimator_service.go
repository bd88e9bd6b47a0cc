package service

import (
	"context"
	"math"
	"time"

	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/blaisecz/bedtime-estimator/internal/regression"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// EstimatorService turns the three form inputs into a recommended bedtime.
type EstimatorService interface {
	// Estimate returns the bedtime or domain.ErrPredictionFailed. Input ranges are not re-checked.
	Estimate(ctx context.Context, in domain.EstimateInput) (*domain.BedtimeEstimate, error)
}

type estimatorService struct {
	model regression.Predictor
	clock domain.ClockStyle
	log   *zap.Logger
}

// NewEstimatorService creates a new EstimatorService.
func NewEstimatorService(model regression.Predictor, clock domain.ClockStyle, log *zap.Logger) EstimatorService {
	if log == nil {
		log = zap.NewNop()
	}
	return &estimatorService{
		model: model,
		clock: clock,
		log:   log.Named("estimator"),
	}
}

func (s *estimatorService) Estimate(ctx context.Context, in domain.EstimateInput) (*domain.BedtimeEstimate, error) {
	tracer := otel.Tracer("bedtime-estimator/estimator")
	ctx, span := tracer.Start(ctx, "EstimatorService.Estimate",
		trace.WithAttributes(
			attribute.Int("wake.hour", in.Wake.Hour),
			attribute.Int("wake.minute", in.Wake.Minute),
			attribute.Float64("sleep.hours", in.SleepAmount),
			attribute.Int("coffee.cups", in.CoffeeIntake),
		),
	)
	defer span.End()

	features := regression.Features{
		Wake:           float64(in.Wake.SecondsSinceMidnight()),
		EstimatedSleep: in.SleepAmount,
		Coffee:         float64(in.CoffeeIntake),
	}

	prediction, err := s.model.Predict(ctx, features)
	if err == nil && !isUsableSleep(prediction.ActualSleep) {
		err = regression.ErrInvalidPrediction
	}
	if err != nil {
		// The cause stays in the logs; callers only ever see the generic failure.
		s.log.Warn("prediction failed",
			zap.Float64("wake", features.Wake),
			zap.Float64("estimated_sleep", features.EstimatedSleep),
			zap.Float64("coffee", features.Coffee),
			zap.Error(err))
		span.SetStatus(codes.Error, "prediction failed")
		return nil, domain.ErrPredictionFailed
	}

	estimate := bedtime(in.Wake, prediction.ActualSleep, s.clock)
	span.SetAttributes(
		attribute.Float64("prediction.actual_sleep", prediction.ActualSleep),
		attribute.String("bedtime", estimate.Formatted),
	)

	return estimate, nil
}

// maxSleepSeconds bounds a prediction to something time.Duration can hold.
const maxSleepSeconds = float64(math.MaxInt64 / int64(time.Second))

func isUsableSleep(hours float64) bool {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return false
	}
	return math.Abs(hours*3600) < maxSleepSeconds
}

// bedtime subtracts the predicted sleep from the wake time on an arbitrary reference day.
// The prediction is rounded to whole seconds first; the displayed minute is then truncated.
func bedtime(wake domain.WakeTime, actualSleepHours float64, clock domain.ClockStyle) *domain.BedtimeEstimate {
	ref := time.Date(2001, time.January, 2, wake.Hour, wake.Minute, 0, 0, time.UTC)
	sleep := time.Duration(math.Round(actualSleepHours*3600)) * time.Second
	bed := ref.Add(-sleep)

	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	bedDay := time.Date(bed.Year(), bed.Month(), bed.Day(), 0, 0, 0, 0, time.UTC)

	return &domain.BedtimeEstimate{
		Hour:                bed.Hour(),
		Minute:              bed.Minute(),
		Formatted:           domain.FormatClock(bed.Hour(), bed.Minute(), clock),
		PredictedSleepHours: actualSleepHours,
		DaysBefore:          int(refDay.Sub(bedDay).Hours() / 24),
	}
}
