// Package adapter defines the contract for database export targets.
//
// Concrete implementations live in pkg/adapters/ subdirectories and
// register themselves with the registry in their init() functions;
// import one with a blank identifier to make it available.
package adapter

import "context"

// Config describes the export target. It is decoded from the target
// section of eegtab.yaml.
type Config struct {
	// Type selects the registered adapter (e.g. "sqlite", "duckdb", "postgres").
	Type string `koanf:"type"`

	// Path is the database file for file-backed stores. Empty means
	// in-memory where the engine supports it.
	Path string `koanf:"path"`

	// Server-based stores.
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Database string `koanf:"database"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`

	// Options holds engine-specific settings (e.g. sslmode).
	Options map[string]string `koanf:"options"`
}

// Adapter is the write surface an export target must provide.
type Adapter interface {
	// Connect establishes a connection using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the connection and releases resources.
	Close() error

	// Exec executes a statement that returns no rows (DDL, DELETE).
	Exec(ctx context.Context, sql string) error

	// Insert writes rows into a table inside a single transaction.
	Insert(ctx context.Context, table string, columns []string, rows [][]any) error
}
