// Package commands implements the eegtab subcommands.
package commands

import (
	"github.com/eegstack-labs/eegtab/internal/cli/config"
)

// activeConfig returns the configuration loaded by the root command.
// Commands executed standalone (tests, embedding) fall back to a fresh
// load with defaults.
func activeConfig() (*config.Config, error) {
	if c := config.Get(); c != nil {
		return c, nil
	}
	return config.LoadConfig("", nil)
}
