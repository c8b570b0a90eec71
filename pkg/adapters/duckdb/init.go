// This file registers the DuckDB adapter with the adapter registry.
// Import this package with a blank identifier to register the adapter:
//
//	import _ "github.com/eegstack-labs/eegtab/pkg/adapters/duckdb"
package duckdb

import (
	"log/slog"

	"github.com/eegstack-labs/eegtab/pkg/adapter"
)

func init() {
	adapter.Register("duckdb", func(l *slog.Logger) adapter.Adapter { return New(l) })
}
