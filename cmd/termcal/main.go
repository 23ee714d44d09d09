package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/termcal/terminal"
)

func main() {
	// Panic Recovery: the session's deferred Close has already restored the screen while unwinding
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
