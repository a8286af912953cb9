// Command highlite is a demo embedder for the highlighting library:
// it renders files through the preset rule sets, validates rule files
// and runs a small interactive terminal editor with live styling.
package main

import (
	"fmt"
	"os"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
