package main

import (
	"taskrun/cmd"   // CLI commands and execution logic
	"taskrun/tasks" // The operator-edited task declarations
)

// main is the program entry point. Task declarations are registered first,
// in their source order, and cmd.Execute() then parses the command line and
// dispatches to apply, rollback or list.
//
// taskrun is a minimal sequential task runner for idempotent provisioning
// work:
//   - Tasks are declared in code (tasks package) as do/when/undo closures
//     and run strictly in declaration order; there is no dependency graph.
//   - apply runs each task's do action, skipping tasks whose when predicate
//     reports the machine is already in the desired state.
//   - rollback runs each task's undo action unconditionally where present,
//     warning (not failing) for tasks that have none.
//   - Any failing action aborts the run immediately with a non-zero exit;
//     there is no retry and no partial-success bookkeeping.
//
// Idempotency is the responsibility of each task's own when/do logic; the
// runner keeps no persistent record of what already ran.
func main() {
	tasks.RegisterAll()
	cmd.Execute()
}
