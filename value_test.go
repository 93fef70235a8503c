package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinTypeDumpFormats(t *testing.T) {
	vm := New(DefaultLimits())

	var buf bytes.Buffer
	boolValue(vm.boolType, true).dump(&buf)
	assert.Equal(t, "T", buf.String())

	buf.Reset()
	intValue(vm.intType, -3).dump(&buf)
	assert.Equal(t, "-3", buf.String())
}

func TestIntEqualityAndTruthiness(t *testing.T) {
	vm := New(DefaultLimits())

	a := intValue(vm.intType, 5)
	b := intValue(vm.intType, 5)
	assert.True(t, a.equal(b))
	assert.True(t, a.isTrue())
	assert.False(t, intValue(vm.intType, 0).isTrue())
}

func TestMacroLiteralIsNeverFoldable(t *testing.T) {
	vm := New(DefaultLimits())
	v, ok := vm.find("if")
	assert.True(t, ok)
	_, foldable := v.literal()
	assert.False(t, foldable)
}

func TestFunctionLiteralIsNeverFoldable(t *testing.T) {
	vm := New(DefaultLimits())
	v, ok := vm.find("+")
	assert.True(t, ok)
	_, foldable := v.literal()
	assert.False(t, foldable)
}
