package cmd

import (
	"github.com/spf13/cobra"

	"taskrun/internal/runner"
	"taskrun/internal/task"
)

// rollbackCmd runs every declared task's undo action, in the same
// declaration order as apply. Tasks without an undo produce a warning and
// are skipped.
var rollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Run all tasks' undo actions in declaration order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := runner.New(task.Default(), runner.Options{Debug: debug})
		return r.Rollback()
	},
}

func init() {
	rootCmd.AddCommand(rollbackCmd)
}
