// Package config holds defaults and helpers shared between the CLI
// configuration layer and commands.
package config

import (
	"fmt"

	"github.com/eegstack-labs/eegtab/pkg/adapter"
	"github.com/eegstack-labs/eegtab/pkg/eeg"
)

// Default configuration values.
const (
	DefaultProjection = "polar"
	DefaultEdgePolicy = "truncate"
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultBatchSize  = 5000
)

// ApplyTargetDefaults applies default values to a target config based on
// the target type.
func ApplyTargetDefaults(t *adapter.Config) {
	if t == nil {
		return
	}
	if t.Type == "postgres" && t.Port == 0 {
		t.Port = 5432
	}
}

// ParseEdgePolicy maps a configuration string to an edge policy.
func ParseEdgePolicy(s string) (eeg.EdgePolicy, error) {
	switch s {
	case "truncate", "":
		return eeg.EdgeTruncateNA, nil
	case "drop":
		return eeg.EdgeDrop, nil
	case "error":
		return eeg.EdgeError, nil
	default:
		return 0, fmt.Errorf("unknown edge policy %q (want truncate, drop, or error)", s)
	}
}
