// Package main is the entry point for the eegtab CLI.
package main

import (
	"os"

	"github.com/eegstack-labs/eegtab/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
