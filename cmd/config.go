package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/daily-scale/internal/model"
)

// configCmd represents the config command.
var configCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(newConfigSaveCmd())

	return cmd
}

func newConfigSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Store the current selection flags as defaults",
		Long: `Write the configuration file with the selection flags given on this
command line. Settings not given on the command line keep their stored values.

  daily-scale config save -t drop-d6 -s dorian,aeolian`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := effectiveConfig(cmd)
			if err != nil {
				return err
			}

			if _, err := m.ParsePools(cfg.Tuning, cfg.RootNotes, cfg.Scales, cfg.StartingFrets); err != nil {
				return fmt.Errorf("invalid selection: %w", err)
			}

			path, err := configPath()
			if err != nil {
				return err
			}

			if err := configStore.Save(path, cfg); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved configuration to %s\n", path)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}
