package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_opcodes(t *testing.T) {
	// every keyword count from 0 through 9 maps to its opcode, in line order
	counts := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	prog, err := Compile(chickenSource(counts...))
	require.NoError(t, err)
	require.Len(t, prog, len(counts))
	for i, n := range counts {
		assert.Equal(t, opValue(Opcode(n)), prog[i], "expected opcode for count %v", n)
	}
}

func TestCompile_literals(t *testing.T) {
	for _, n := range []int{10, 11, 42, 99} {
		prog, err := Compile(chickenLine(n))
		require.NoError(t, err)
		require.Len(t, prog, 1)
		assert.Equal(t, Int(n), prog[0], "expected raw literal token for count %v", n)
	}
}

func TestCompile_invalid(t *testing.T) {
	for _, tc := range []struct {
		name      string
		source    string
		wantLine  int
		wantWords []string
	}{
		{
			name:      "one bad word",
			source:    "chicken chickn chicken",
			wantLine:  1,
			wantWords: []string{"chickn"},
		},
		{
			name:      "bad word on a later line",
			source:    "chicken chicken\nchicken\nchicken egg",
			wantLine:  3,
			wantWords: []string{"egg"},
		},
		{
			name:      "distinct bad words deduplicated and sorted",
			source:    "duck chicken cow duck cow",
			wantLine:  1,
			wantWords: []string{"cow", "duck"},
		},
		{
			name:      "case matters",
			source:    "Chicken",
			wantLine:  1,
			wantWords: []string{"Chicken"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.source)
			require.Error(t, err)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "expected a *ParseError, got %T", err)
			assert.Equal(t, tc.wantLine, pe.Line, "expected 1-based line number")
			assert.Equal(t, tc.wantWords, pe.Words, "expected offending words")
			assert.Contains(t, err.Error(), "invalid token(s) on line")
		})
	}
}

func TestCompile_lines(t *testing.T) {
	for _, tc := range []struct {
		name   string
		source string
		want   Program
	}{
		{
			name:   "empty source compiles to an empty program",
			source: "",
			want:   Program{},
		},
		{
			name:   "blank line is exit",
			source: "\n",
			want:   Program{opValue(OpExit)},
		},
		{
			name:   "trailing newline adds no phantom line",
			source: "chicken\n",
			want:   Program{opValue(OpChicken)},
		},
		{
			name:   "crlf endings",
			source: "chicken chicken\r\nchicken\r\n",
			want:   Program{opValue(OpAdd), opValue(OpChicken)},
		},
		{
			name:   "interior blank lines are exits",
			source: "chicken\n\nchicken",
			want:   Program{opValue(OpChicken), opValue(OpExit), opValue(OpChicken)},
		},
		{
			name:   "tabs and runs of spaces split words",
			source: "chicken\tchicken  chicken",
			want:   Program{opValue(OpSub)},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := Compile(tc.source)
			require.NoError(t, err)
			assert.Equal(t, tc.want, prog)
		})
	}
}

func TestParseError_message(t *testing.T) {
	pe := &ParseError{Line: 7, Words: []string{"bawk", "cluck"}}
	assert.Equal(t, "invalid token(s) on line 7: bawk cluck", pe.Error())
}

func TestChickenSource(t *testing.T) {
	// the test helpers themselves: counted lines of nothing but the keyword
	src := chickenSource(2, 0, 1)
	assert.Equal(t, "chicken chicken\n\nchicken", src)
	assert.Equal(t, 11, len(strings.Fields(chickenLine(11))))
}
