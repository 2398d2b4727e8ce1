package main

import (
	"fmt"
	"os"

	"github.com/runnerr0/timeliner/internal/cli"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

func main() {
	if err := cli.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
