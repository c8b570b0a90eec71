// This file registers the SQLite adapter with the adapter registry.
// Import this package with a blank identifier to register the adapter:
//
//	import _ "github.com/eegstack-labs/eegtab/pkg/adapters/sqlite"
package sqlite

import (
	"log/slog"

	"github.com/eegstack-labs/eegtab/pkg/adapter"
)

func init() {
	adapter.Register("sqlite", func(l *slog.Logger) adapter.Adapter { return New(l) })
}
