// Package config loads CLI configuration from eegtab.yaml, environment
// variables, and flags.
package config

import (
	intconfig "github.com/eegstack-labs/eegtab/internal/config"
	"github.com/eegstack-labs/eegtab/pkg/adapter"
)

// Config holds all CLI configuration options.
type Config struct {
	// Montage is the path to the electrode layout file.
	Montage string `koanf:"montage"`

	// Projection selects the 3D-to-2D mapping for topographic output.
	Projection string `koanf:"projection"`

	// EdgePolicy controls segmentation windows that leave the recording:
	// truncate, drop, or error.
	EdgePolicy string `koanf:"edge_policy"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`

	Export ExportConfig `koanf:"export"`
}

// ExportConfig configures the export command.
type ExportConfig struct {
	// Prefix is prepended to every exported table name.
	Prefix string `koanf:"prefix"`

	// BatchSize is the number of rows per insert transaction.
	BatchSize int `koanf:"batch_size"`

	// Target selects and configures the destination database.
	Target adapter.Config `koanf:"target"`
}

// Default configuration values, shared with internal/config.
const (
	DefaultProjection = intconfig.DefaultProjection
	DefaultEdgePolicy = intconfig.DefaultEdgePolicy
	DefaultOutput     = intconfig.DefaultOutput
	DefaultBatchSize  = intconfig.DefaultBatchSize
)
