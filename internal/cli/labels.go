package cli

import (
	"fmt"

	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/spf13/cobra"
)

func newLabelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "Show the accepted sleep and coffee values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			titleColor.Fprintln(out, "Sleep")
			for h := domain.MinSleepHours; h <= domain.MaxSleepHours; h += domain.SleepHoursStep {
				fmt.Fprintln(out, "  "+domain.SleepLabel(h))
			}

			titleColor.Fprintln(out, "Coffee")
			for cups := 0; cups <= domain.MaxCoffeeCups; cups++ {
				fmt.Fprintln(out, "  "+domain.CupLabel(cups))
			}
			return nil
		},
	}
}
