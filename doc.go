/* Package main: an interpreter for the chicken programming language.

chicken is an esoteric language with exactly one word of vocabulary: chicken.
A program is a sequence of lines, and every line compiles to exactly one
instruction by counting how many times the word occurs on it.  Zero chickens
halt the machine, one pushes the string "chicken", and counts two through nine
name the remaining eight operations: add, subtract, multiply, compare, load,
store, jump, and character conversion.  Ten or more chickens push the count
less ten as an integer, which is how programs smuggle arbitrary numbers in.

The machine that runs the compiled tokens keeps everything on one combined
stack.  Slot 0 stands for the stack itself, slot 1 holds the program's input
string, the compiled program occupies the slots from 2 up to an implicit
trailing EXIT, and whatever the program pushes at runtime piles up after that.
There is no fence between code and data: load and store address the whole
stack by absolute index, so a program can read its own instructions, patch
them, or park loop counters in slots it has already executed past.  Several
canonical chicken programs depend on exactly this.

The tokenizer lives in compile.go, the machine state and its addressing model
in vm.go, and the per-opcode semantics in ops.go.  The exported surface --
Compile, New, Run, and the machine options -- is collected in api.go and
options.go, and main.go wraps it all in a small flag-driven command.
*/
package main
