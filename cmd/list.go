package cmd

import (
	"github.com/spf13/cobra"

	"taskrun/internal/runner"
	"taskrun/internal/task"
)

// listCmd prints the declared task names, one per line, in declaration
// order, without running anything.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print task names in declaration order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := runner.New(task.Default(), runner.Options{Debug: debug})
		return r.List(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
