// Package main is the entry point for the fieldops-cost CLI.
package main

import (
	"os"

	"fieldops-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
