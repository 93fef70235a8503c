package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentKeepsEntriesSorted(t *testing.T) {
	env := newEnvironment(8)
	assert.True(t, env.set("b", Value{}))
	assert.True(t, env.set("a", Value{}))
	assert.True(t, env.set("c", Value{}))
	assert.False(t, env.set("a", Value{}))

	names := make([]string, len(env.entries))
	for i, e := range env.entries {
		names[i] = e.name
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)

	_, ok := env.get("missing")
	assert.False(t, ok)
}

func TestEnvironmentCapacityPanics(t *testing.T) {
	env := newEnvironment(1)
	assert.True(t, env.set("x", Value{}))
	assert.Panics(t, func() { env.set("y", Value{}) })
}

func TestScopeStackRejectsReservedDropNames(t *testing.T) {
	ss := newScopeStack(4, 8)
	ss.push()
	assert.False(t, ss.bind("d", Value{}))
	assert.False(t, ss.bind("ddd", Value{}))
	assert.True(t, ss.bind("drop", Value{})) // "drop" doesn't match ^d+$
}

func TestScopeStackChildInheritsRegCount(t *testing.T) {
	ss := newScopeStack(4, 8)
	ss.push()
	ss.allocReg(16)
	ss.allocReg(16)
	child := ss.push()
	assert.Equal(t, 2, child.regCount)
}

func TestScopeStackDepthPanics(t *testing.T) {
	ss := newScopeStack(1, 8)
	ss.push()
	assert.Panics(t, func() { ss.push() })
}
