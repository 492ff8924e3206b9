// sandbox-go runs an untrusted program under ptrace, confining it to a
// syscall/filesystem policy and wall-time/memory/process limits, and
// reduces the run to a single verdict.
//
// Commands:
//
//	run      - supervise a run described by a config file
//	version  - print version information
package main

import (
	"fmt"
	"os"

	"sandbox-go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
