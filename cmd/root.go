// Package cmd provides the root command and CLI setup for daily-scale.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mouse-blink/daily-scale/internal/adapter"
	"github.com/mouse-blink/daily-scale/internal/controller"
	"github.com/mouse-blink/daily-scale/internal/domain"
	m "github.com/mouse-blink/daily-scale/internal/model"
)

var version = "dev"

var configStore adapter.ConfigStore
var workflow domain.Workflow
var ui controller.UI

// now is the clock used to seed date-based selections.
var now = time.Now

var errorColor = color.New(color.FgRed)

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	configStore = adapter.NewConfigStore()
	workflow = domain.NewWorkflow(ui, adapter.NewSourceProvider(), domain.NewPicker())
}

var tuningFlag string
var rootNotesFlag []string
var scalesFlag []string
var startingFretsFlag []int
var fullRandomnessFlag bool
var configFlag string
var verboseFlag bool

var logger = zap.NewNop()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "daily-scale",
		Short:   "Have you practiced today?",
		Version: version,
		Long: `daily-scale picks a scale, a root note and a starting fret, then draws
the scale on a fretboard diagram.

Unless --full-randomness is set the pick is seeded with today's date, so
everyone running the same pools gets the same scale of the day.

Defaults can be stored in a YAML file (see --config):
  tuning: drop-d6
  root_notes: [c, d-flat]
  scales: [dorian, major]
  starting_frets: [0, 5]
  full_randomness: false`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger(verboseFlag)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := dailyArgs(cmd)
			if err != nil {
				return err
			}

			return workflow.Daily(args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&tuningFlag, "tuning", "t", m.StandardE6.ID(), "your choice of tuning")
	flags.StringSliceVarP(&rootNotesFlag, "root-notes", "n", nil, "pool of root notes of the scale (e.g. c,d-flat,f-sharp)")
	flags.StringSliceVarP(&scalesFlag, "scales", "s", nil, "pool of scales (e.g. major,dorian)")
	flags.IntSliceVarP(&startingFretsFlag, "starting-frets", "f", nil,
		fmt.Sprintf("pool of frets to start the scale on (0-%d)", m.MaxStartingFret))
	flags.BoolVarP(&fullRandomnessFlag, "full-randomness", "r", false, "do not use today's date as the random seed")
	flags.StringVar(&configFlag, "config", "", "path to the configuration file (default is the user config directory)")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(verbose bool) error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger = built
	zap.ReplaceGlobals(logger)

	return nil
}

// dailyArgs parses the effective configuration into workflow arguments.
func dailyArgs(cmd *cobra.Command) (domain.DailyArgs, error) {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return domain.DailyArgs{}, err
	}

	pools, err := m.ParsePools(cfg.Tuning, cfg.RootNotes, cfg.Scales, cfg.StartingFrets)
	if err != nil {
		return domain.DailyArgs{}, fmt.Errorf("invalid selection: %w", err)
	}

	return domain.DailyArgs{
		Pools:          pools,
		FullRandomness: cfg.FullRandomness,
		Date:           now(),
	}, nil
}

// effectiveConfig merges the configuration file with the flags that were set
// explicitly on the command line.
func effectiveConfig(cmd *cobra.Command) (m.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return m.Config{}, err
	}

	flags := cmd.Flags()

	if flags.Changed("tuning") || cfg.Tuning == "" {
		cfg.Tuning = tuningFlag
	}

	if flags.Changed("root-notes") {
		cfg.RootNotes = rootNotesFlag
	}

	if flags.Changed("scales") {
		cfg.Scales = scalesFlag
	}

	if flags.Changed("starting-frets") {
		cfg.StartingFrets = startingFretsFlag
	}

	if flags.Changed("full-randomness") {
		cfg.FullRandomness = fullRandomnessFlag
	}

	return cfg, nil
}

func configPath() (m.Path, error) {
	if configFlag != "" {
		return m.Path(configFlag), nil
	}

	return configStore.DefaultPath()
}

func loadConfig() (m.Config, error) {
	path, err := configPath()
	if err != nil {
		zap.L().Debug("no default config path", zap.Error(err))
		return m.Config{}, nil
	}

	return configStore.Load(path)
}
