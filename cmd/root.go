package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"taskrun/internal/config"
	"taskrun/internal/logger"
)

// debug indicates whether debug tracing should be enabled. It can be
// toggled via the `--debug` flag, the TASKRUN_DEBUG environment variable,
// or the runner config file.
var debug bool

// configPath holds the path to the runner configuration file, passed via
// the `--config` or `-c` flag. The file is optional.
var configPath string

// rootCmd is the base command for the CLI tool `taskrun`.
// Invoked with no arguments it prints usage and exits zero.
var rootCmd = &cobra.Command{
	Use:   "taskrun",
	Short: "Sequential runner for idempotent provisioning tasks",
	Long: `taskrun drives a declared list of provisioning tasks in order.

Each task has a do action, an optional when predicate deciding whether do
needs to run, and an optional undo action for rollback. Tasks run strictly
in declaration order, for apply and rollback alike.`,

	// Cobra reports usage and task errors itself through Execute below,
	// once, via the colorized logger.
	SilenceErrors: true,
	SilenceUsage:  true,

	// PersistentPreRunE runs before any subcommand: load the runner config
	// and initialize the logger from the combined debug toggles.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if !cfg.Color {
			logger.DisableColor()
		}
		debug = debug || cfg.Debug || config.DebugFromEnv()
		logger.Init(debug)
		return nil
	},
}

// init registers the global flags. Subcommands attach themselves in their
// own init functions.
func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug tracing of task actions")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "taskrun.yaml", "Path to the runner configuration file")
}

// Execute runs the CLI. Any error, whether CLI misuse or a task aborting
// the run, is reported once and turns into a non-zero exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}
