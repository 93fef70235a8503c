package main

import (
	"fmt"
	"io"
)

// regIndex is a register index into the top state's register file.
type regIndex int

// Type is a named method table. Types are compared by identity (pointer
// equality); they live for the lifetime of the VM. The zero value of each
// method is "not supported for this type" except where a default below
// applies.
type Type struct {
	Name string

	Dump   func(v Value, w io.Writer)
	Emit   func(v Value, form *Form, rest *formList, vm *VM) error
	Equal  func(x, y Value) bool
	IsTrue func(v Value) bool
	// Literal returns the compile-time constant behind v, or ok=false if v
	// is not foldable (e.g. a Func or Macro).
	Literal func(v Value) (Value, bool)
}

func defaultEmit(v Value, form *Form, rest *formList, vm *VM) error {
	vm.emit(OpPush, form).push = v
	return nil
}

func defaultIsTrue(Value) bool { return true }

func defaultLiteral(v Value) (Value, bool) { return v, true }

func newType(name string) *Type {
	return &Type{
		Name:    name,
		Emit:    defaultEmit,
		IsTrue:  defaultIsTrue,
		Literal: defaultLiteral,
	}
}

// Value is a tagged union: Type identifies which of the payload fields
// below is live. Values are always copied by value -- on the stack, in
// registers, as opcode immediates, and in environment entries.
type Value struct {
	Type *Type

	asBool bool
	asInt  int32
	asFunc *Function
	asMacro *Macro
	asMeta  *Type
	asReg   regIndex
}

func boolValue(t *Type, b bool) Value  { return Value{Type: t, asBool: b} }
func intValue(t *Type, i int32) Value  { return Value{Type: t, asInt: i} }
func funcValue(t *Type, f *Function) Value { return Value{Type: t, asFunc: f} }
func macroValue(t *Type, m *Macro) Value   { return Value{Type: t, asMacro: m} }
func metaValue(t *Type, of *Type) Value    { return Value{Type: t, asMeta: of} }

func (v Value) dump(w io.Writer) {
	if v.Type == nil || v.Type.Dump == nil {
		fmt.Fprint(w, "<undumpable>")
		return
	}
	v.Type.Dump(v, w)
}

func (v Value) emit(form *Form, rest *formList, vm *VM) error {
	return v.Type.Emit(v, form, rest, vm)
}

func (v Value) equal(other Value) bool {
	return v.Type.Equal != nil && v.Type.Equal(v, other)
}

func (v Value) isTrue() bool {
	if v.Type == nil || v.Type.IsTrue == nil {
		return true
	}
	return v.Type.IsTrue(v)
}

func (v Value) literal() (Value, bool) {
	if v.Type == nil || v.Type.Literal == nil {
		return Value{}, false
	}
	return v.Type.Literal(v)
}

// registerBuiltinTypes installs Meta, Bool, Int, Func, Macro and their
// constant/operator bindings into the VM's outermost scope.
func (vm *VM) registerBuiltinTypes() {
	vm.metaType = newType("Meta")
	vm.metaType.Dump = func(v Value, w io.Writer) { fmt.Fprint(w, v.asMeta.Name) }
	vm.bindMust("Meta", metaValue(vm.metaType, vm.metaType))

	vm.boolType = newType("Bool")
	vm.boolType.Dump = func(v Value, w io.Writer) {
		if v.asBool {
			fmt.Fprint(w, "T")
		} else {
			fmt.Fprint(w, "F")
		}
	}
	vm.boolType.Equal = func(x, y Value) bool { return x.asBool == y.asBool }
	vm.boolType.IsTrue = func(v Value) bool { return v.asBool }
	vm.bindMust("Bool", metaValue(vm.metaType, vm.boolType))
	vm.bindMust("T", boolValue(vm.boolType, true))
	vm.bindMust("F", boolValue(vm.boolType, false))

	vm.intType = newType("Int")
	vm.intType.Dump = func(v Value, w io.Writer) { fmt.Fprintf(w, "%d", v.asInt) }
	vm.intType.Equal = func(x, y Value) bool { return x.asInt == y.asInt }
	vm.intType.IsTrue = func(v Value) bool { return v.asInt != 0 }
	vm.bindMust("Int", metaValue(vm.metaType, vm.intType))

	vm.funcType = newType("Func")
	vm.funcType.Dump = func(v Value, w io.Writer) { fmt.Fprint(w, v.asFunc.Name) }
	vm.funcType.Emit = funcEmit
	vm.funcType.Literal = func(Value) (Value, bool) { return Value{}, false }
	vm.bindMust("Func", metaValue(vm.metaType, vm.funcType))

	vm.macroType = newType("Macro")
	vm.macroType.Dump = func(v Value, w io.Writer) { fmt.Fprintf(w, "Macro(%s)", v.asMacro.Name) }
	vm.macroType.Emit = macroEmit
	vm.macroType.Literal = func(Value) (Value, bool) { return Value{}, false }
	vm.bindMust("Macro", metaValue(vm.metaType, vm.macroType))
}
