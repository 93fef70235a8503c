package main

import "fmt"

// run threads dispatch from start until a STOP, returning the error (if
// any) left in the VM's buffer. Any other fault (stack underflow, a
// capacity violation) is a panic, caught by the caller at the process
// boundary.
func (vm *VM) run(start pc) error {
	p := start
	for {
		op := vm.ops.at(p)
		if vm.debug {
			vm.traceOp(p, op)
		}

		switch op.Kind {
		case OpPush:
			vm.push(op.push)
			p++

		case OpDrop:
			if vm.stackSize() < op.dropCount {
				return vm.errorf(op.form.Pos, "Not enough values")
			}
			vm.dropN(op.dropCount)
			p++

		case OpLoad:
			v := vm.pop()
			*vm.reg(op.loadReg) = v
			p++

		case OpStore:
			v := *vm.reg(op.storeReg)
			vm.push(v)
			p++

		case OpBranch:
			cond := vm.pop()
			if cond.isTrue() {
				p++
			} else {
				p = op.branchFalsePC
			}

		case OpJump:
			p = op.jumpTarget

		case OpNop:
			p++

		case OpEqual:
			y := op.equalY
			if !op.equalYSet {
				y = vm.pop()
			}
			x := op.equalX
			if !op.equalXSet {
				x = vm.pop()
			}
			vm.push(boolValue(vm.boolType, x.equal(y)))
			p++

		case OpCall:
			p = op.call.Body(op.call, p+1, vm)

		case OpRet:
			f := vm.popFrame()
			p = f.retPC

		case OpStop:
			return nil

		default:
			panic(fmt.Errorf("unhandled opcode %v", op.Kind))
		}
	}
}

// traceOp writes one disassembled step to the debug trace stream.
func (vm *VM) traceOp(p pc, op *Op) {
	fmt.Fprintf(vm.debugOut, "%04d %v ", p, op.Kind)
	vm.dumpStack(vm.debugOut)
	fmt.Fprintln(vm.debugOut)
}
