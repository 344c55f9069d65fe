package main

import "fmt"

// Opcode is one of the ten fixed operations of the language, named by a
// line's keyword count.  Counts of ten or more are not opcodes but integer
// literals; see Machine.step.
type Opcode int

const (
	OpExit    Opcode = iota // halt execution
	OpChicken               // push the string "chicken"
	OpAdd                   // pop b, pop a, push a+b (concat if non-numeric)
	OpSub                   // pop b, pop a, push a-b
	OpMul                   // pop b, pop a, push b*a
	OpCmp                   // pop b, pop a, push a == b
	OpLoad                  // fetch source operand, pop index, push source[index]
	OpStore                 // pop address, pop value, stack[address] = value
	OpJmp                   // pop offset, pop condition, jump relative if truthy
	OpChar                  // pop code point, push that character

	opMax
)

var opNames = [opMax]string{
	"EXIT",
	"CHICKEN",
	"ADD",
	"SUB",
	"MUL",
	"CMP",
	"LOAD",
	"STORE",
	"JMP",
	"CHAR",
}

func (op Opcode) String() string {
	if op >= 0 && op < opMax {
		return opNames[op]
	}
	return fmt.Sprintf("op(%v)", int(op))
}

var opTable [opMax]func(vm *Machine)

func init() {
	opTable = [opMax]func(vm *Machine){
		OpExit:    (*Machine).exit,
		OpChicken: (*Machine).chicken,
		OpAdd:     (*Machine).add,
		OpSub:     (*Machine).sub,
		OpMul:     (*Machine).mul,
		OpCmp:     (*Machine).cmp,
		OpLoad:    (*Machine).load,
		OpStore:   (*Machine).store,
		OpJmp:     (*Machine).jmp,
		OpChar:    (*Machine).char,
	}
}

// exit never dispatches: the run loop stops on an EXIT token without
// consuming it.  The slot keeps the table dense.
func (vm *Machine) exit() {}

// chicken pushes the string constant.
func (vm *Machine) chicken() {
	vm.push(Text(keyword))
}

// add pops b then a and pushes a+b: numeric addition when both operands are
// numbers, otherwise concatenation of the rendered forms, mirroring the
// loose + of the reference interpreters.
func (vm *Machine) add() {
	b, a := vm.pop(), vm.pop()
	if a.isNumber() && b.isNumber() {
		vm.logf("add %s + %s", a.repr(), b.repr())
		vm.push(Int(a.num + b.num))
		return
	}
	vm.logf("add concat %s + %s", a.repr(), b.repr())
	vm.push(Text(a.String() + b.String()))
}

// sub pops b then a and pushes a-b, coercing both to integers; a non-numeric
// operand is a fault.
func (vm *Machine) sub() {
	b, a := vm.pop(), vm.pop()
	bi, ai := vm.toInt(b), vm.toInt(a)
	vm.logf("sub %v - %v", ai, bi)
	vm.push(Int(ai - bi))
}

// mul pops b then a and pushes b*a under the same coercion as sub.
func (vm *Machine) mul() {
	b, a := vm.pop(), vm.pop()
	bi, ai := vm.toInt(b), vm.toInt(a)
	vm.logf("mul %v * %v", bi, ai)
	vm.push(Int(bi * ai))
}

// cmp pops b then a and pushes a == b; see Value.equal for the relation.
func (vm *Machine) cmp() {
	b, a := vm.pop(), vm.pop()
	vm.push(Bool(a.equal(b)))
}

// load fetches the token after itself as a source address, then pops an
// index.  Address 0 selects the combined stack; any other address must hold
// a string, which slot 1 -- the input -- conventionally does.  An index
// outside the source pushes the empty string instead of faulting, which
// canonical programs rely on to fall off the end of their input.
func (vm *Machine) load() {
	from := vm.toInt(vm.loadProg())
	if from < 0 || from >= len(vm.stack) {
		vm.halt(loadError(from))
	}
	src := vm.stack[from]
	index := vm.toInt(vm.pop())

	switch src.kind {
	case KindStack:
		if index < 0 || index >= len(vm.stack) {
			vm.logf("load stack[%v] out of range", index)
			vm.push(Text(""))
			return
		}
		vm.logf("load stack[%v] = %s", index, vm.stack[index].repr())
		vm.push(vm.stack[index])

	case KindText:
		rs := []rune(src.str)
		if index < 0 || index >= len(rs) {
			vm.logf("load @%v[%v] out of range", from, index)
			vm.push(Text(""))
			return
		}
		vm.push(Text(string(rs[index])))

	default:
		vm.halt(sourceError{from, src})
	}
}

// store pops an address then a value and writes the value to that absolute
// stack slot; see Machine.stor for the bounds policy.
func (vm *Machine) store() {
	addr := vm.toInt(vm.pop())
	val := vm.pop()
	vm.logf("stor %s -> @%v", val.repr(), addr)
	vm.stor(addr, val)
}

// jmp pops a relative offset then a condition; a truthy condition moves the
// instruction pointer by the offset on top of the normal advance.  The
// offset is only coerced when the jump is taken.
func (vm *Machine) jmp() {
	offset := vm.pop()
	if cond := vm.pop(); cond.truthy() {
		vm.prog += vm.toInt(offset)
		vm.logf("jmp %s -> @%v", offset.repr(), vm.prog)
	} else {
		vm.logf("jmp skipped")
	}
}

// char pops an integer code point and pushes the corresponding one-character
// string.
func (vm *Machine) char() {
	cp := vm.toInt(vm.pop())
	if cp < 0 || cp > 0x10FFFF {
		vm.halt(charError(cp))
	}
	vm.push(Text(string(rune(cp))))
}
