package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// HandleCrash restores the active terminal, prints the panic and stack trace to stderr, and exits 1
func HandleCrash(r any) {
	if r == nil {
		return
	}

	activeMu.Lock()
	t := active
	activeMu.Unlock()
	if t != nil {
		t.Close()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}
