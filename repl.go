package main

import (
	"fmt"
	"io"
)

// readTurnForms accumulates forms until a semicolon form (discarded) or
// until the character source is exhausted. eof reports the latter; forms
// collected before an EOF are still returned, mirroring the source's own
// "drain whatever was read, then compile it" loop shape.
func (vm *VM) readTurnForms(rd *reader) (forms []*Form, eof bool, err error) {
	for {
		f, err := vm.readForm(rd)
		if err != nil {
			return forms, false, err
		}
		if f == nil {
			return forms, true, nil
		}
		if f.Kind == formSemicolon {
			return forms, false, nil
		}
		forms = append(forms, f)
	}
}

// flusher is satisfied by flushio.WriteFlusher without repl.go needing to
// import it directly; cmd.go hands RunREPL a buffered writer so each
// turn's output reaches the terminal promptly instead of sitting in a
// bufio.Writer until process exit.
type flusher interface {
	Flush() error
}

// RunREPL drives turns from rd until its source is exhausted, writing
// results (or errors) to out after each one. Bindings, the operand stack,
// and compiled bytecode all persist across turns, since they all live on
// vm.
func (vm *VM) RunREPL(rd *reader, out io.Writer) {
	flush := func() {
		if f, ok := out.(flusher); ok {
			f.Flush()
		}
	}
	defer flush()

	for {
		forms, eof, err := vm.readTurnForms(rd)
		if err != nil {
			fmt.Fprintln(out, err)
			flush()
			if eof {
				return
			}
			continue
		}
		if eof && len(forms) == 0 {
			return
		}

		start := vm.pc()
		if err := vm.emitForms(forms); err != nil {
			fmt.Fprintln(out, err)
		} else {
			vm.emit(OpStop, nil)
			if err := vm.run(start); err != nil {
				fmt.Fprintln(out, err)
			} else {
				vm.dumpStack(out)
				fmt.Fprintln(out)
			}
		}

		flush()
		if eof {
			return
		}
	}
}
