package main

import (
	"fmt"
	"io"
	"strconv"
)

// machineDumper renders the combined stack as a segmented listing: the
// reserved slots, the program with decoded tokens, and the data region, with
// the instruction pointer marked.
type machineDumper struct {
	vm  *Machine
	out io.Writer

	addrWidth int
}

func (dump machineDumper) dump() {
	vm := dump.vm
	fmt.Fprintf(dump.out, "# Machine Dump\n")
	fmt.Fprintf(dump.out, "  prog: %v\n", vm.prog)

	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(len(vm.stack))) + 1
	}

	for addr, val := range vm.stack {
		switch addr {
		case progStart:
			fmt.Fprintf(dump.out, "# Program @%v\n", progStart)
		case vm.dataStart:
			fmt.Fprintf(dump.out, "# Data @%v\n", vm.dataStart)
		}

		fmt.Fprintf(dump.out, "  @% *v %s", dump.addrWidth, addr, val.repr())
		switch addr {
		case 0:
			io.WriteString(dump.out, " self")
		case 1:
			io.WriteString(dump.out, " input")
		}
		if addr == vm.prog {
			io.WriteString(dump.out, " <- prog")
		}
		io.WriteString(dump.out, "\n")
	}
}
