package main

// emitForms drains forms, compiling each in turn. It is the compiler's
// top-level driver, called once per REPL turn with that turn's forms.
func (vm *VM) emitForms(forms []*Form) error {
	fl := newFormList(forms)
	for !fl.empty() {
		f := fl.next()
		if err := vm.formEmit(f, fl); err != nil {
			return err
		}
	}
	return nil
}

// formEmit compiles one form. rest is the still-unprocessed tail of the
// enclosing form list -- identifiers that resolve to a Func or Macro value
// are handed it so they can drain their own arguments from it.
func (vm *VM) formEmit(f *Form, rest *formList) error {
	switch f.Kind {
	case formLiteral:
		vm.emit(OpPush, f).push = f.literal
		return nil

	case formGroup:
		// Groups are transparent: drain and emit children in order, in
		// their own sub-list so a macro inside the group can't reach past
		// its closing paren.
		inner := newFormList(f.group)
		for !inner.empty() {
			child := inner.next()
			if err := vm.formEmit(child, inner); err != nil {
				return err
			}
		}
		return nil

	case formSemicolon:
		return vm.errorf(f.Pos, "Semi emit")

	case formIdentifier:
		if dropPattern.MatchString(f.name) {
			vm.emit(OpDrop, f).dropCount = len(f.name)
			return nil
		}
		v, ok := vm.find(f.name)
		if !ok {
			return vm.errorf(f.Pos, "Unknown id: %s", f.name)
		}
		return v.emit(f, rest, vm)

	default:
		return vm.errorf(f.Pos, "unreachable form kind")
	}
}
