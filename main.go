package main

import (
	"fmt"
	"os"
)

// main wires the cobra root command and turns any returned error into the
// exit code spec §7 calls for, replacing the original's direct
// linux_exit(-1) on a fatal condition with Go's normal error-return
// plumbing (spec §9 redesign note).
func main() {
	cmd := newRootCommand()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lone: %v\n", err)
	}
	os.Exit(ExitCode(err))
}
