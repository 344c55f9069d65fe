package main

import (
	"fmt"
	"strconv"
)

// A Kind tags which variant a Value holds.
type Kind uint8

const (
	// KindInt is an integer, the result of literal pushes and arithmetic.
	KindInt Kind = iota

	// KindText is a string, the result of CHICKEN, CHAR, and concatenation.
	KindText

	// KindBool is a boolean, the result of CMP.
	KindBool

	// KindOp is a not-yet-executed opcode sitting in the program segment.
	KindOp

	// KindStack marks the reserved slot 0 value that stands for the
	// combined stack itself.  The original JavaScript interpreter stores a
	// circular self reference there; a marker preserves the addressing
	// semantics without the aliasing trick.
	KindStack
)

// Value is one cell of the machine's combined stack: an integer, a piece of
// text, a boolean, an opcode, or the slot 0 stack marker.  The zero Value is
// the integer 0.
type Value struct {
	kind Kind
	num  int
	str  string
}

// Int makes an integer value.
func Int(n int) Value { return Value{kind: KindInt, num: n} }

// Text makes a string value.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// Bool makes a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, num: boolInt(b)} }

func opValue(op Opcode) Value { return Value{kind: KindOp, num: int(op)} }

var stackSelf = Value{kind: KindStack}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// isNumber reports whether v participates in arithmetic as-is: integers of
// course, booleans as 0/1, and opcodes by their code value.
func (v Value) isNumber() bool {
	return v.kind == KindInt || v.kind == KindBool || v.kind == KindOp
}

// toInt coerces v to an integer: numbers pass through, text must parse as a
// whole base-10 integer, anything else fails.
func (v Value) toInt() (int, error) {
	switch v.kind {
	case KindInt, KindBool, KindOp:
		return v.num, nil
	case KindText:
		n, err := strconv.Atoi(v.str)
		if err != nil {
			return 0, coerceError{v}
		}
		return n, nil
	}
	return 0, coerceError{v}
}

// truthy reports whether v triggers a conditional jump: non-zero numbers,
// non-empty text, true, and the stack marker itself.
func (v Value) truthy() bool {
	switch v.kind {
	case KindText:
		return v.str != ""
	case KindStack:
		return true
	}
	return v.num != 0
}

// equal is the CMP relation: kinds must match, then payloads must match.
// There is no coercion, so "1" never equals 1, and true never equals 1.
func (v Value) equal(o Value) bool {
	return v.kind == o.kind && v.num == o.num && v.str == o.str
}

// String renders v the way it concatenates and prints: integers in decimal,
// text verbatim, booleans as true/false, opcodes by name.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.num != 0)
	case KindOp:
		return Opcode(v.num).String()
	case KindStack:
		return "[stack]"
	}
	return strconv.Itoa(v.num)
}

// repr is the unambiguous form used by traces, dumps, and errors; it differs
// from String only by quoting text.
func (v Value) repr() string {
	if v.kind == KindText {
		return strconv.Quote(v.str)
	}
	return v.String()
}

type coerceError struct{ val Value }

func (ce coerceError) Error() string {
	return fmt.Sprintf("cannot coerce %s to a number", ce.val.repr())
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
