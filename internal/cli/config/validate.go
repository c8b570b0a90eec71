package config

import (
	"fmt"

	intconfig "github.com/eegstack-labs/eegtab/internal/config"
	"github.com/eegstack-labs/eegtab/pkg/montage"
)

// Validate checks if the configuration is valid. Target types are not
// checked here; the adapter registry reports unknown types with the
// available alternatives when the export command connects.
func (c *Config) Validate() error {
	if _, err := intconfig.ParseEdgePolicy(c.EdgePolicy); err != nil {
		return err
	}
	if _, err := montage.ParseProjection(c.Projection); err != nil {
		return err
	}
	if c.Export.BatchSize < 0 {
		return fmt.Errorf("export.batch_size must be positive, got %d", c.Export.BatchSize)
	}
	return nil
}
