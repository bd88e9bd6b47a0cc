// Package cli implements the bedtime command-line tool on top of the same estimator the API serves.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/blaisecz/bedtime-estimator/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const AppName = "bedtime"

type options struct {
	verbose bool
	log     *zap.Logger
}

// NewRootCommand builds the command tree writing to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{log: logger.NewNop()}

	root := &cobra.Command{
		Use:   AppName,
		Short: "Find out when to go to bed",
		Long: `bedtime recommends a bedtime from the time you want to wake up,
how much sleep you want and how much coffee you drink.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.verbose {
				return nil
			}
			log, err := logger.New("debug")
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log model loading and failures to stderr")

	root.AddCommand(newEstimateCommand(opts))
	root.AddCommand(newLabelsCommand())

	return root
}

// Execute runs the CLI against os.Args and returns the process exit code.
func Execute() int {
	err := NewRootCommand(os.Stdout).Execute()
	if err == nil {
		return 0
	}
	// Prediction failures have already been reported in the result's own words.
	if !errors.Is(err, domain.ErrPredictionFailed) {
		errorColor.Fprintln(os.Stderr, "Error: "+err.Error())
	}
	return 1
}
