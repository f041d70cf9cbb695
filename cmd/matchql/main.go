// Package main provides the entry point for the matchql CLI.
package main

import (
	"os"

	"github.com/searchforge/matchquery/cmd/matchql/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
