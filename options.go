package main

// MachineOption configures a Machine at construction time.
type MachineOption interface{ apply(vm *Machine) }

// WithInput sets the program's input string, held immutably (by convention;
// STORE can still clobber it) in slot 1 of the combined stack.
func WithInput(input string) MachineOption { return inputOption(input) }

// WithLogf enables step tracing through the given formatting function.
func WithLogf(logfn func(mess string, args ...interface{})) MachineOption { return logfnOption(logfn) }

// WithStepLimit faults the machine after the given number of dispatched
// steps.  Zero means unlimited; a non-terminating program is a legal chicken
// program, so the cap is opt-in for hosting contexts.
func WithStepLimit(limit int) MachineOption { return stepLimitOption(limit) }

type inputOption string
type logfnOption func(mess string, args ...interface{})
type stepLimitOption int

func (in inputOption) apply(vm *Machine)      { vm.stack[1] = Text(string(in)) }
func (logfn logfnOption) apply(vm *Machine)   { vm.logfn = logfn }
func (lim stepLimitOption) apply(vm *Machine) { vm.stepLimit = int(lim) }
