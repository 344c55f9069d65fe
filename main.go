package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"time"
)

func main() {
	ctx := context.Background()

	var file string
	var timeout time.Duration
	var trace bool
	var dump bool
	var stepLimit int
	flag.StringVar(&file, "f", "", "read source from `file` instead of stdin")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "dump the machine after running")
	flag.IntVar(&stepLimit, "step-limit", 0, "fail after this many machine steps")
	flag.Parse()

	source, err := readSource(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	prog, err := Compile(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	opts := []MachineOption{WithInput(flag.Arg(0))}
	if trace {
		opts = append(opts, WithLogf(log.Printf))
	}
	if stepLimit != 0 {
		opts = append(opts, WithStepLimit(stepLimit))
	}
	vm := New(prog, opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := vm.Run(ctx)
	if dump {
		machineDumper{vm: vm, out: os.Stderr}.dump()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
	fmt.Println(res)
}

// readSource reads the program text from the -f file, or from stdin when it
// is a pipe or redirect; an interactive stdin with no -f is an error rather
// than a hang.
func readSource(file string) (string, error) {
	if file != "" {
		b, err := ioutil.ReadFile(file)
		return string(b), err
	}
	if info, err := os.Stdin.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
		return "", errors.New("source code required: pipe text in or pass the -f option")
	}
	b, err := ioutil.ReadAll(os.Stdin)
	return string(b), err
}
