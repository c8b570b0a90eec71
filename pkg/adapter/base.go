package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
)

// PlaceholderFunc formats the n-th (1-based) statement placeholder.
type PlaceholderFunc func(n int) string

// QuestionPlaceholder is the "?" style used by sqlite and duckdb.
func QuestionPlaceholder(int) string { return "?" }

// DollarPlaceholder is the "$N" style used by postgres.
func DollarPlaceholder(n int) string { return fmt.Sprintf("$%d", n) }

// BaseSQLAdapter provides common database/sql functionality for adapters.
// Embed this struct in concrete adapter implementations to get standard
// Close, Exec, and Insert implementations.
type BaseSQLAdapter struct {
	DB          *sql.DB
	Cfg         Config
	Logger      *slog.Logger
	Placeholder PlaceholderFunc
}

// Close closes the database connection.
func (b *BaseSQLAdapter) Close() error {
	if b.DB != nil {
		if b.Logger != nil {
			b.Logger.Debug("closing database connection")
		}
		return b.DB.Close()
	}
	return nil
}

// Exec executes a SQL statement that doesn't return rows.
func (b *BaseSQLAdapter) Exec(ctx context.Context, sqlStr string) error {
	if b.DB == nil {
		return fmt.Errorf("database connection not established")
	}
	if _, err := b.DB.ExecContext(ctx, sqlStr); err != nil {
		return fmt.Errorf("failed to execute SQL: %w", err)
	}
	return nil
}

// Insert writes rows into a table with a prepared statement inside a
// single transaction, rolling back on the first failure.
func (b *BaseSQLAdapter) Insert(ctx context.Context, table string, columns []string, rows [][]any) error {
	if b.DB == nil {
		return fmt.Errorf("database connection not established")
	}
	if len(rows) == 0 {
		return nil
	}

	placeholder := b.Placeholder
	if placeholder == nil {
		placeholder = QuestionPlaceholder
	}
	marks := make([]string, len(columns))
	for i := range columns {
		marks[i] = placeholder(i + 1)
	}
	//nolint:gosec // Table and column names come from the exporter, not user input.
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(marks, ", "))

	tx, err := b.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	prepared, err := tx.PrepareContext(ctx, stmt)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = prepared.Close() }()

	for _, row := range rows {
		if _, err := prepared.ExecContext(ctx, row...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit insert: %w", err)
	}
	return nil
}

// IsConnected returns true if the database connection is established.
func (b *BaseSQLAdapter) IsConnected() bool {
	return b.DB != nil
}
