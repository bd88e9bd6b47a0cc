package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/bedtime-estimator/internal/api/validation"
	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/blaisecz/bedtime-estimator/internal/regression"
	"github.com/blaisecz/bedtime-estimator/internal/service"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type estimateFlags struct {
	wake      string
	sleep     float64
	coffee    int
	clock     string
	modelPath string
	asJSON    bool
}

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	timeColor  = color.New(color.FgGreen, color.Bold)
	errorColor = color.New(color.FgRed, color.Bold)
)

func newEstimateCommand(opts *options) *cobra.Command {
	flags := &estimateFlags{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate your ideal bedtime",
		Example: `  bedtime estimate
  bedtime estimate --wake 6:30am --sleep 7.5 --coffee 3
  bedtime estimate --wake 05:45 --clock 24h --model artifact.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, opts, flags)
		},
	}

	defaultWake := domain.FormatClock(domain.DefaultWakeHour, domain.DefaultWakeMinute, domain.Clock24h)
	cmd.Flags().StringVarP(&flags.wake, "wake", "w", defaultWake, `wake-up time, "07:00" or "7:00 AM"`)
	cmd.Flags().Float64VarP(&flags.sleep, "sleep", "s", domain.DefaultSleepHours, "desired sleep in hours (4-12, 0.25 steps)")
	cmd.Flags().IntVarP(&flags.coffee, "coffee", "c", domain.DefaultCoffeeCups, "daily coffee intake in cups (0-20)")
	cmd.Flags().StringVar(&flags.clock, "clock", string(domain.Clock12h), "time format: 12h or 24h")
	cmd.Flags().StringVarP(&flags.modelPath, "model", "m", "", "path to a JSON model artifact (default: built-in)")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print the API response body instead of text")

	return cmd
}

func runEstimate(cmd *cobra.Command, opts *options, flags *estimateFlags) error {
	out := cmd.OutOrStdout()

	clock := domain.ClockStyle(flags.clock)
	if clock != domain.Clock12h && clock != domain.Clock24h {
		return fmt.Errorf("--clock must be 12h or 24h, got %q", flags.clock)
	}

	wake, err := domain.ParseClock(flags.wake)
	if err != nil {
		return err
	}

	req := domain.EstimateRequest{
		WakeHour:   &wake.Hour,
		WakeMinute: &wake.Minute,
		SleepHours: &flags.sleep,
		CoffeeCups: &flags.coffee,
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		msgs := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			msgs = append(msgs, fe.Field+" "+fe.Message)
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
	}

	model, err := loadModel(flags.modelPath)
	if err != nil {
		return err
	}

	svc := service.NewEstimatorService(model, clock, opts.log)
	estimate, err := svc.Estimate(context.Background(), req.ToInput())
	if err != nil {
		if errors.Is(err, domain.ErrPredictionFailed) {
			errorColor.Fprintln(out, domain.ErrorTitle)
			fmt.Fprintln(out, domain.PredictionFailedMessage)
		}
		return err
	}

	if flags.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(estimate.ToResponse())
	}

	titleColor.Fprintln(out, domain.ResultTitle)
	timeColor.Fprintln(out, estimate.Formatted)
	return nil
}

// loadModel falls back to the built-in artifact. A broken artifact file is reported at
// prediction time as a generic failure, the same way the API does.
func loadModel(path string) (regression.Predictor, error) {
	if path == "" {
		return regression.NewLinearModel(regression.DefaultArtifact())
	}
	return regression.NewLazy(func(ctx context.Context) (regression.Predictor, error) {
		artifact, err := regression.LoadArtifact(path)
		if err != nil {
			return nil, err
		}
		return regression.NewLinearModel(artifact)
	}), nil
}
