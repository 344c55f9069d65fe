package main

import (
	"fmt"
	"sort"
	"strings"
)

// keyword is the entire vocabulary of the language.
const keyword = "chicken"

// Program is the compiled form of a source text: one token per source line,
// in source order.  A token is either an opcode value or a bare integer
// (a word count of ten or more, pushed less ten at runtime).
type Program []Value

// ParseError reports the distinct non-keyword words found on a source line.
type ParseError struct {
	Line  int      // 1-based source line number
	Words []string // offending words, sorted
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("invalid token(s) on line %v: %v", pe.Line, strings.Join(pe.Words, " "))
}

// Compile tokenizes chicken source text into a Program.  Each line becomes
// exactly one token from its keyword count; any other word fails the whole
// compilation with a *ParseError.  Blank lines count zero and so compile to
// EXIT.
func Compile(source string) (Program, error) {
	lines := sourceLines(source)
	prog := make(Program, 0, len(lines))
	for i, line := range lines {
		words := strings.Fields(line)

		var bad []string
		for _, word := range words {
			if word != keyword && !contains(bad, word) {
				bad = append(bad, word)
			}
		}
		if len(bad) > 0 {
			sort.Strings(bad)
			return nil, &ParseError{Line: i + 1, Words: bad}
		}

		if n := len(words); n > 9 {
			prog = append(prog, Int(n))
		} else {
			prog = append(prog, opValue(Opcode(n)))
		}
	}
	return prog, nil
}

// sourceLines splits on newlines without manufacturing a phantom final line
// from a trailing newline; \r\n line endings are tolerated.
func sourceLines(source string) []string {
	lines := strings.Split(source, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func contains(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
