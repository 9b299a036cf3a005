package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/daily-scale/internal/domain"
)

var planDaysFlag int
var planParallelFlag int

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Preview the scales of the coming days",
		Long: `Show the date-seeded scale of today and the following days.

The pools and tuning flags apply; --full-randomness is ignored because every
day of a plan is seeded with its own date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			daily, err := dailyArgs(cmd)
			if err != nil {
				return err
			}

			return workflow.Plan(domain.PlanArgs{
				Pools:   daily.Pools,
				From:    daily.Date,
				Days:    planDaysFlag,
				Threads: planParallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&planDaysFlag, "days", "d", 7, "number of days to preview")
	cmd.Flags().IntVarP(&planParallelFlag, "parallel", "p", 0, "number of parallel workers (default is GOMAXPROCS)")

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}
