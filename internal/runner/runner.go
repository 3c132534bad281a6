package runner

import (
	"fmt"
	"io"

	"taskrun/internal/logger"
	"taskrun/internal/task"
)

// Options configures a run. Debug is threaded through explicitly rather
// than read from ambient process state so the executor stays testable.
type Options struct {
	Debug bool
}

// Runner drives a registry of tasks through apply, rollback and list.
// Execution is strictly sequential: one task's full lifecycle completes
// before the next task starts, in declaration order.
type Runner struct {
	reg  *task.Registry
	opts Options
}

// New builds a runner over the given registry.
func New(reg *task.Registry, opts Options) *Runner {
	return &Runner{reg: reg, opts: opts}
}

// Apply runs every task in declaration order.
// Per task: a missing Do is fatal; a When predicate returning false skips
// the task but the run continues; any error from When or Do aborts the run
// immediately, leaving later tasks unattempted. There is no retry and no
// automatic rollback of tasks that already applied.
func (r *Runner) Apply() error {
	tasks := r.reg.Tasks()
	logger.Info("[INFO] Applying %d task(s)\n", len(tasks))

	applied, skipped := 0, 0
	for _, t := range tasks {
		logger.Step("==> %s\n", t.Name)

		if t.Do == nil {
			return fmt.Errorf("task %q has no do action", t.Name)
		}

		if t.When != nil {
			r.trace("%s: evaluating when predicate\n", t.Name)
			ok, err := t.When()
			if err != nil {
				return fmt.Errorf("task %q: when predicate failed: %w", t.Name, err)
			}
			if !ok {
				logger.Info("[INFO] %s: skipped, already satisfied\n", t.Name)
				skipped++
				continue
			}
		}

		r.trace("%s: running do action\n", t.Name)
		if err := t.Do(); err != nil {
			return fmt.Errorf("task %q: do action failed: %w", t.Name, err)
		}
		logger.Info("[INFO] %s: done\n", t.Name)
		applied++
	}

	logger.Info("[INFO] Apply complete: %d applied, %d skipped\n", applied, skipped)
	return nil
}

// Rollback runs every task's Undo action in declaration order (the same
// order as apply, not reversed). When predicates are not consulted; an Undo
// runs unconditionally when present. A task without an Undo produces a
// warning and the run continues. A failing Undo aborts the run.
func (r *Runner) Rollback() error {
	tasks := r.reg.Tasks()
	logger.Info("[INFO] Rolling back %d task(s)\n", len(tasks))

	undone, missing := 0, 0
	for _, t := range tasks {
		logger.Step("==> %s\n", t.Name)

		if t.Undo == nil {
			logger.Warn("[WARN] %s: no undo action, nothing to roll back\n", t.Name)
			missing++
			continue
		}

		r.trace("%s: running undo action\n", t.Name)
		if err := t.Undo(); err != nil {
			return fmt.Errorf("task %q: undo action failed: %w", t.Name, err)
		}
		logger.Info("[INFO] %s: rolled back\n", t.Name)
		undone++
	}

	logger.Info("[INFO] Rollback complete: %d rolled back, %d without undo\n", undone, missing)
	return nil
}

// List writes the registered task names to w, one per line, in declaration
// order. Duplicate declarations appear once per declaration.
func (r *Runner) List(w io.Writer) error {
	for _, name := range r.reg.Names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// trace emits a debug line when the run was started with Debug enabled.
func (r *Runner) trace(format string, a ...any) {
	if r.opts.Debug {
		logger.Debug("[DEBUG] "+format, a...)
	}
}
