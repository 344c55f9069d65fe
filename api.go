package main

import (
	"context"
	"fmt"
	"runtime/debug"
)

// New builds a Machine around a compiled Program.  The combined stack is laid
// out once here -- self-reference marker, input string, program tokens, and
// an implicit trailing EXIT -- and then mutated in place until the machine is
// discarded.
func New(prog Program, opts ...MachineOption) *Machine {
	vm := &Machine{}
	vm.stack = append(vm.stack, stackSelf, Text(""))
	vm.stack = append(vm.stack, prog...)
	vm.stack = append(vm.stack, opValue(OpExit))
	vm.prog = progStart
	vm.dataStart = len(vm.stack)
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
	return vm
}

// Run executes the program to completion and returns the value left on top
// of the stack.  Machine faults -- bad coercions, invalid stores, an empty
// stack at the end -- come back as errors that errors.Is/As can inspect;
// context cancellation is checked between steps.
func (vm *Machine) Run(ctx context.Context) (res Value, err error) {
	defer vm.recoverFault(&err)
	return vm.run(ctx), nil
}

// machineFault carries a halt error out through the Go stack; recoverFault
// turns it back into a plain error at the Run boundary.
type machineFault struct{ error }

func (f machineFault) Error() string { return fmt.Sprintf("machine fault: %v", f.error) }
func (f machineFault) Unwrap() error { return f.error }

func (vm *Machine) recoverFault(errp *error) {
	switch e := recover().(type) {
	case nil:
	case machineFault:
		*errp = e
	default:
		*errp = panicError{e, debug.Stack()}
	}
}

// panicError preserves any non-fault panic -- an interpreter bug, not a
// program error -- along with its stack.
type panicError struct {
	e     interface{}
	stack []byte
}

func (pe panicError) Error() string {
	return fmt.Sprintf("machine paniced: %v", pe.e)
}

func (pe panicError) Format(f fmt.State, c rune) {
	fmt.Fprintf(f, "machine paniced: %v", pe.e)
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

func (pe panicError) Unwrap() error {
	err, _ := pe.e.(error)
	return err
}
