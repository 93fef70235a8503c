package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachinePopOnEmptyStackPanics(t *testing.T) {
	vm := New(DefaultLimits())
	assert.Panics(t, func() { vm.pop() })
}

// TestEvalBranchFalsySkipsToTarget builds a BRANCH/JUMP sequence directly
// (bypassing the compiler) to exercise the evaluator's dispatch loop in
// isolation.
func TestEvalBranchFalsySkipsToTarget(t *testing.T) {
	vm := New(DefaultLimits())

	start := vm.pc()
	push := vm.emit(OpPush, nil)
	push.push = boolValue(vm.boolType, false)

	branch := vm.emit(OpBranch, nil)

	thenPush := vm.emit(OpPush, nil)
	thenPush.push = intValue(vm.intType, 1)
	jump := vm.emit(OpJump, nil)

	branch.branchFalsePC = vm.pc()
	elsePush := vm.emit(OpPush, nil)
	elsePush.push = intValue(vm.intType, 2)
	jump.jumpTarget = vm.pc()

	vm.emit(OpStop, nil)

	assert.NoError(t, vm.run(start))
	assert.Equal(t, 1, vm.stackSize())
	assert.Equal(t, int32(2), vm.peek().asInt)
}

func TestEvalBranchTruthyFallsThrough(t *testing.T) {
	vm := New(DefaultLimits())

	start := vm.pc()
	push := vm.emit(OpPush, nil)
	push.push = boolValue(vm.boolType, true)

	branch := vm.emit(OpBranch, nil)

	thenPush := vm.emit(OpPush, nil)
	thenPush.push = intValue(vm.intType, 1)
	jump := vm.emit(OpJump, nil)

	branch.branchFalsePC = vm.pc()
	elsePush := vm.emit(OpPush, nil)
	elsePush.push = intValue(vm.intType, 2)
	jump.jumpTarget = vm.pc()

	vm.emit(OpStop, nil)

	assert.NoError(t, vm.run(start))
	assert.Equal(t, int32(1), vm.peek().asInt)
}

func TestEvalEqualWithInlinedImmediates(t *testing.T) {
	vm := New(DefaultLimits())

	start := vm.pc()
	eq := vm.emit(OpEqual, nil)
	eq.equalX, eq.equalXSet = intValue(vm.intType, 5), true
	eq.equalY, eq.equalYSet = intValue(vm.intType, 5), true
	vm.emit(OpStop, nil)

	assert.NoError(t, vm.run(start))
	assert.True(t, vm.peek().asBool)
}
