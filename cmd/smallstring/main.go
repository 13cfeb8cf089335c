// Package main is the entry point for the smallstring CLI.
//
// Usage:
//
//	smallstring [flags] <command>
//
// Commands:
//
//	demo     - Walk the buffer API through a scripted example
//	bench    - Measure append throughput against the standard library
//	version  - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/smallstring/cmd/smallstring/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
