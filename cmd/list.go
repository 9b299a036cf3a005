package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/daily-scale/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "list [tunings|scales]",
		Short:     "List the available tunings and scales",
		Long:      "List the identifiers accepted by --tuning and --scales, with their notes.",
		ValidArgs: []string{"tunings", "scales"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(_ *cobra.Command, args []string) error {
			listArgs := domain.ListArgs{}

			if len(args) == 1 {
				listArgs.Tunings = args[0] == "tunings"
				listArgs.Scales = args[0] == "scales"
			}

			return workflow.List(listArgs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
