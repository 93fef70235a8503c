/* Package main: fibr -- a small stack-oriented expression interpreter.

fibr reads forms terminated by semicolons, compiles them into a flat
instruction stream for a register/stack virtual machine, runs the stream,
and prints the resulting operand stack. Integers, booleans, first-class
functions, named bindings, and compile-time macros are all first-class
values dispatched through a single Type/Value representation -- see
value.go.

The pipeline is reader (reader.go) -> form tree (form.go) -> compiler
(compile.go, macro.go) -> bytecode (opcode.go) -> evaluator (eval.go). A
VM (vm.go) owns every piece of mutable state for one interpreter session:
environments, the bytecode store, the form arena, the operand stack, the
register file, the call frames, and the error buffer.

cmd.go wires a cobra CLI around the REPL loop (repl.go); none of that
changes core language semantics.
*/
package main
