package task

import (
	"taskrun/internal/logger"
)

// Task is a named unit of provisioning work.
// - Do: performs the effect. Required for the task to be applied.
// - When: optional predicate consulted before Do. Returning false skips the
//   task; returning an error aborts the run the same way a failing Do does.
// - Undo: optional inverse of Do, invoked unconditionally during rollback.
//
// A task carries no persisted state. "Has this already run" is entirely the
// job of its When predicate, which is what keeps apply idempotent.
type Task struct {
	Name string
	Do   func() error
	When func() (bool, error)
	Undo func() error
}

// Registry is an append-only, ordered list of tasks. The order tasks are
// added is the declaration order used for apply, rollback and list alike
// (rollback is not reversed).
type Registry struct {
	tasks []Task
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a task to the registry, preserving call order.
// Duplicate names are kept, not collapsed: both entries will be listed and
// run. A warning flags the duplicate since it is almost always a mistake.
func (r *Registry) Add(t Task) {
	for _, existing := range r.tasks {
		if existing.Name == t.Name {
			logger.Warn("[WARN] Task %q declared more than once; both declarations will run\n", t.Name)
			break
		}
	}
	r.tasks = append(r.tasks, t)
}

// Tasks returns the registered tasks in declaration order.
// The slice is a copy; callers cannot reorder the registry through it.
func (r *Registry) Tasks() []Task {
	out := make([]Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Names returns the task names in declaration order, duplicates included.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tasks))
	for _, t := range r.tasks {
		names = append(names, t.Name)
	}
	return names
}

// Len reports how many tasks have been registered.
func (r *Registry) Len() int {
	return len(r.tasks)
}

// defaultRegistry backs the package-level Register/Default helpers so task
// declarations read as a flat list at program startup.
var defaultRegistry = NewRegistry()

// Register adds a task to the default registry.
func Register(t Task) {
	defaultRegistry.Add(t)
}

// Default returns the default registry the CLI commands operate on.
func Default() *Registry {
	return defaultRegistry
}
