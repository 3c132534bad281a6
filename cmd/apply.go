package cmd

import (
	"github.com/spf13/cobra"

	"taskrun/internal/runner"
	"taskrun/internal/task"
)

// applyCmd runs every declared task in declaration order, respecting each
// task's when predicate. The first failure aborts the run.
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Run all tasks in declaration order, respecting when predicates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := runner.New(task.Default(), runner.Options{Debug: debug})
		return r.Apply()
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
