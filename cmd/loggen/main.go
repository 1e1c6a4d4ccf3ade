package main

import (
	"fmt"
	"os"

	"github.com/valter-silva-au/loggen/internal/cli"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "💥 Unexpected error: %v\n", err)
		os.Exit(1)
	}
}
