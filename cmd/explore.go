package cmd

import (
	"github.com/spf13/cobra"
)

// exploreCmd represents the explore command.
var exploreCmd = newExploreCmd()

func newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explore the scale of the day interactively",
		Long:  "Start from the scale of the day and move the fret window or change the tuning, scale and root.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := dailyArgs(cmd)
			if err != nil {
				return err
			}

			return workflow.Explore(args)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
