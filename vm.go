package main

import "io"

// VM owns every piece of interpreter state across REPL turns: lexical
// scopes, the call-frame machine, the compiled opcode store, the form
// arena, capacity limits, and the single pending error.
type VM struct {
	limits Limits

	scopes *scopeStack
	mach   *machine
	ops    *bytecodeStore
	forms  *arena[Form]

	funcs []*Function

	metaType  *Type
	boolType  *Type
	intType   *Type
	funcType  *Type
	macroType *Type

	debug    bool
	debugOut io.Writer

	lastErr error
}

// New constructs a VM with its outermost scope and baseline machine state
// already pushed, and every built-in type, func and macro bound.
func New(limits Limits) *VM {
	vm := &VM{
		limits:   limits,
		scopes:   newScopeStack(limits.ScopeCount, limits.EnvSize),
		mach:     newMachine(limits),
		ops:      newBytecodeStore(limits.OpCount),
		forms:    newArena[Form]("form table", limits.FormCount),
		debugOut: io.Discard,
	}
	vm.scopes.push()
	vm.mach.pushState()

	vm.registerBuiltinTypes()
	vm.registerBuiltinFuncs()
	vm.registerBuiltinMacros()

	return vm
}

// SetTrace directs disassembly output for debug mode (see function.go's
// `debug` toggle and eval.go's per-op trace) to w.
func (vm *VM) SetTrace(w io.Writer) { vm.debugOut = w }

// LastError reports the most recently buffered diagnostic, if any.
func (vm *VM) LastError() error { return vm.lastErr }

func (vm *VM) bind(name string, v Value) bool { return vm.scopes.bind(name, v) }

func (vm *VM) find(name string) (Value, bool) { return vm.scopes.find(name) }

// bindMust installs a built-in binding; a failure here is a programming
// error in the built-in table, not a user-facing condition.
func (vm *VM) bindMust(name string, v Value) {
	if !vm.bind(name, v) {
		panic("fibr: duplicate built-in binding: " + name)
	}
}

func (vm *VM) pushScope() *scope { return vm.scopes.push() }

func (vm *VM) popScope() { vm.scopes.pop() }

func (vm *VM) allocReg() regIndex { return vm.scopes.allocReg(vm.limits.RegCount) }

func (vm *VM) push(v Value) { vm.mach.push(v) }

func (vm *VM) pop() Value { return vm.mach.pop() }

func (vm *VM) peek() *Value { return vm.mach.peek() }

func (vm *VM) stackSize() int { return vm.mach.stackSize() }

func (vm *VM) dropN(n int) { vm.mach.dropN(n) }

func (vm *VM) reg(r regIndex) *Value { return vm.mach.reg(r) }

func (vm *VM) dumpStack(w io.Writer) { vm.mach.dumpStack(w) }

func (vm *VM) pushFrame(fn *Function, retPC pc) { vm.mach.pushFrame(fn, retPC) }

func (vm *VM) popFrame() *frame { return vm.mach.popFrame() }
