package main

import (
	"context"
	"errors"
	"fmt"
)

// progStart is where the program segment begins on the combined stack, right
// after the reserved self-reference and input slots.
const progStart = 2

// Machine executes one compiled Program over one combined stack.  The stack
// simultaneously holds the reserved slots, the program, and the runtime data
// region; prog indexes the next token to fetch from that same stack.
type Machine struct {
	stack []Value
	prog  int // instruction pointer into the combined stack

	// dataStart is where the data region begins: one past the implicit
	// trailing EXIT.  Only traces and dumps care; the running program
	// addresses the stack absolutely.
	dataStart int

	stepLimit int
	steps     int

	logfn func(mess string, args ...interface{})
}

func (vm *Machine) logf(mess string, args ...interface{}) {
	if vm.logfn != nil {
		vm.logfn(mess, args...)
	}
}

// halt aborts the run with err, unwinding out to Run's recover.
func (vm *Machine) halt(err error) {
	vm.logf("halt error: %v", err)
	panic(machineFault{err})
}

func (vm *Machine) haltif(err error) {
	if err != nil {
		vm.halt(err)
	}
}

func (vm *Machine) push(val Value) {
	vm.stack = append(vm.stack, val)
}

func (vm *Machine) pop() Value {
	i := len(vm.stack) - 1
	if i < 0 {
		vm.halt(errStackEmpty)
	}
	val := vm.stack[i]
	vm.stack = vm.stack[:i]
	return val
}

func (vm *Machine) peek() Value {
	i := len(vm.stack) - 1
	if i < 0 {
		vm.halt(errStackEmpty)
	}
	return vm.stack[i]
}

// loadProg fetches the token under the instruction pointer and advances.
// LOAD uses it a second time per step to fetch its source operand, so the
// pointer is bounds-checked here as well as in the run loop.
func (vm *Machine) loadProg() Value {
	if vm.prog < 0 || vm.prog >= len(vm.stack) {
		vm.halt(progError(vm.prog))
	}
	val := vm.stack[vm.prog]
	vm.prog++
	return val
}

// stor writes an arbitrary stack slot by absolute index.  Addresses past the
// end grow the stack, zero-filled; negative addresses fault.  The reference
// interpreters leave this path undefined, growth matches how canonical
// programs use STORE as scratch memory.
func (vm *Machine) stor(addr int, val Value) {
	if addr < 0 {
		vm.halt(storError(addr))
	}
	for addr >= len(vm.stack) {
		vm.stack = append(vm.stack, Value{})
	}
	vm.stack[addr] = val
}

// toInt coerces a popped operand, faulting the machine on failure.
func (vm *Machine) toInt(val Value) int {
	n, err := val.toInt()
	vm.haltif(err)
	return n
}

// dataStack is the data region: everything pushed past the compiled program.
func (vm *Machine) dataStack() []Value {
	if vm.dataStart < len(vm.stack) {
		return vm.stack[vm.dataStart:]
	}
	return nil
}

// run drives the dispatch loop: stop on EXIT without consuming it, or when
// the instruction pointer leaves the stack; the result is whatever is then
// on top.  An empty stack at that point is a fault, not a nil result.
func (vm *Machine) run(ctx context.Context) Value {
	for vm.prog >= 0 && vm.prog < len(vm.stack) {
		if tok := vm.stack[vm.prog]; tok.kind == KindOp && Opcode(tok.num) == OpExit {
			vm.logf("exec @%v EXIT", vm.prog)
			break
		}
		vm.step()
		vm.haltif(ctx.Err())
	}
	return vm.peek()
}

// step fetches and dispatches one token.  Opcodes go through the op table;
// bare numbers push themselves less ten, which is both how literals decode
// and what happens when execution wanders into numeric data; anything else
// in the instruction stream is a fault.
func (vm *Machine) step() {
	if vm.stepLimit != 0 {
		if vm.steps++; vm.steps > vm.stepLimit {
			vm.halt(errStepLimit)
		}
	}

	at := vm.prog
	tok := vm.loadProg()
	switch tok.kind {
	case KindOp:
		op := Opcode(tok.num)
		vm.logf("exec @%v %v -- d:%v", at, op, vm.dataStack())
		opTable[op](vm)
	case KindInt, KindBool:
		vm.logf("exec @%v lit %v", at, tok.num-10)
		vm.push(Int(tok.num - 10))
	default:
		vm.halt(execError{at, tok})
	}
}

var (
	errStackEmpty = errors.New("machine stack empty")
	errStepLimit  = errors.New("step limit exceeded")
)

type progError int
type storError int
type loadError int

type execError struct {
	addr int
	val  Value
}

type sourceError struct {
	addr int
	val  Value
}

type charError int

func (addr progError) Error() string { return fmt.Sprintf("program ran off the stack at %v", int(addr)) }
func (addr storError) Error() string { return fmt.Sprintf("invalid store at %v", int(addr)) }
func (addr loadError) Error() string { return fmt.Sprintf("invalid load source %v", int(addr)) }
func (code charError) Error() string { return fmt.Sprintf("invalid character code %v", int(code)) }

func (ee execError) Error() string {
	return fmt.Sprintf("cannot execute %s at %v", ee.val.repr(), ee.addr)
}

func (se sourceError) Error() string {
	return fmt.Sprintf("cannot load from %s at %v", se.val.repr(), se.addr)
}
