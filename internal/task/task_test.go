package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryPreservesDeclarationOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		reg.Add(Task{Name: name, Do: func() error { return nil }})
	}

	require.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"charlie", "alpha", "bravo"}, reg.Names())
}

func TestRegistryKeepsDuplicateNames(t *testing.T) {
	reg := NewRegistry()
	reg.Add(Task{Name: "dup"})
	reg.Add(Task{Name: "dup"})

	// Duplicates are flagged with a warning but not collapsed; both
	// declarations stay in the list in order.
	require.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"dup", "dup"}, reg.Names())
}

func TestTasksReturnsACopy(t *testing.T) {
	reg := NewRegistry()
	reg.Add(Task{Name: "one"})
	reg.Add(Task{Name: "two"})

	got := reg.Tasks()
	got[0].Name = "mutated"

	assert.Equal(t, []string{"one", "two"}, reg.Names())
}

func TestRegisterAppendsToDefaultRegistry(t *testing.T) {
	before := Default().Len()
	Register(Task{Name: "registered-by-test"})
	require.Equal(t, before+1, Default().Len())

	names := Default().Names()
	assert.Equal(t, "registered-by-test", names[len(names)-1])
}
