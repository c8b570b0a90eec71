// Package exporter writes a container to a SQL export target as three
// tables: the long-format signal view, the events table, and the
// segments table. Existing tables with the same names are replaced.
package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/eegstack-labs/eegtab/pkg/adapter"
	"github.com/eegstack-labs/eegtab/pkg/eeg"
)

const defaultBatchSize = 5000

// Exporter orchestrates the export of one container to a connected
// adapter.
type Exporter struct {
	sink      adapter.Adapter
	logger    *slog.Logger
	batchSize int
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the progress logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) { e.logger = l }
}

// WithBatchSize sets the number of rows per insert transaction.
func WithBatchSize(n int) Option {
	return func(e *Exporter) {
		if n > 0 {
			e.batchSize = n
		}
	}
}

// New creates an exporter writing to an already-connected adapter.
func New(sink adapter.Adapter, opts ...Option) *Exporter {
	e := &Exporter{
		sink:      sink,
		logger:    slog.New(slog.DiscardHandler),
		batchSize: defaultBatchSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes the three tables of the container. The prefix is
// prepended to every table name; an empty prefix yields signal_long,
// events, and segments.
func (e *Exporter) Export(ctx context.Context, c *eeg.Container, prefix string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("refusing to export: %w", err)
	}
	if err := e.exportSignal(ctx, c, prefix+"signal_long"); err != nil {
		return err
	}
	if err := e.exportEvents(ctx, c, prefix+"events"); err != nil {
		return err
	}
	return e.exportSegments(ctx, c, prefix+"segments")
}

func (e *Exporter) exportSignal(ctx context.Context, c *eeg.Container, table string) error {
	ddl := fmt.Sprintf(`CREATE TABLE %s (
	segment_id INTEGER NOT NULL,
	recording TEXT NOT NULL,
	sample INTEGER NOT NULL,
	time DOUBLE PRECISION NOT NULL,
	channel TEXT NOT NULL,
	kind TEXT NOT NULL,
	amplitude DOUBLE PRECISION
)`, table)
	if err := e.recreate(ctx, table, ddl); err != nil {
		return err
	}

	flat := c.Flatten()
	columns := []string{"segment_id", "recording", "sample", "time", "channel", "kind", "amplitude"}
	rows := make([][]any, len(flat))
	for i, r := range flat {
		var amplitude any
		if !math.IsNaN(r.Amplitude) {
			amplitude = r.Amplitude
		}
		rows[i] = []any{r.ID, r.Recording, int(r.Sample), r.Time, r.Channel, r.Kind.String(), amplitude}
	}
	return e.insertBatched(ctx, table, columns, rows)
}

func (e *Exporter) exportEvents(ctx context.Context, c *eeg.Container, table string) error {
	ddl := fmt.Sprintf(`CREATE TABLE %s (
	segment_id INTEGER NOT NULL,
	type TEXT NOT NULL,
	description TEXT,
	onset INTEGER NOT NULL,
	size INTEGER NOT NULL,
	channel TEXT
)`, table)
	if err := e.recreate(ctx, table, ddl); err != nil {
		return err
	}

	columns := []string{"segment_id", "type", "description", "onset", "size", "channel"}
	rows := make([][]any, len(c.Events))
	for i, ev := range c.Events {
		var channel any
		if ev.Channel != "" {
			channel = ev.Channel
		}
		rows[i] = []any{ev.ID, ev.Type, ev.Description, int(ev.Onset), ev.Size, channel}
	}
	return e.insertBatched(ctx, table, columns, rows)
}

func (e *Exporter) exportSegments(ctx context.Context, c *eeg.Container, table string) error {
	extras := c.Segments.ExtraNames

	var ddl strings.Builder
	fmt.Fprintf(&ddl, "CREATE TABLE %s (\n\tid INTEGER NOT NULL,\n\trecording TEXT NOT NULL,\n\tsegment INTEGER NOT NULL", table)
	for _, name := range extras {
		fmt.Fprintf(&ddl, ",\n\t%q %s", name, e.extraColumnType(c, name))
	}
	ddl.WriteString("\n)")
	if err := e.recreate(ctx, table, ddl.String()); err != nil {
		return err
	}

	columns := []string{"id", "recording", "segment"}
	for _, name := range extras {
		columns = append(columns, fmt.Sprintf("%q", name))
	}
	rows := make([][]any, len(c.Segments.Rows))
	for i, row := range c.Segments.Rows {
		vals := []any{row.ID, row.Recording, row.Segment}
		for _, name := range extras {
			vals = append(vals, sqlValue(row.Extra[name]))
		}
		rows[i] = vals
	}
	return e.insertBatched(ctx, table, columns, rows)
}

// extraColumnType picks DOUBLE PRECISION when every present value of the
// column is numeric, TEXT otherwise.
func (e *Exporter) extraColumnType(c *eeg.Container, name string) string {
	for _, row := range c.Segments.Rows {
		v := row.Extra[name]
		if v.IsNA() {
			continue
		}
		if v.Kind() != eeg.KindNumeric {
			return "TEXT"
		}
	}
	return "DOUBLE PRECISION"
}

func (e *Exporter) recreate(ctx context.Context, table, ddl string) error {
	e.logger.Debug("creating table", slog.String("table", table))
	if err := e.sink.Exec(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return fmt.Errorf("dropping %s: %w", table, err)
	}
	if err := e.sink.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("creating %s: %w", table, err)
	}
	return nil
}

func (e *Exporter) insertBatched(ctx context.Context, table string, columns []string, rows [][]any) error {
	for start := 0; start < len(rows); start += e.batchSize {
		end := min(start+e.batchSize, len(rows))
		if err := e.sink.Insert(ctx, table, columns, rows[start:end]); err != nil {
			return err
		}
		e.logger.Debug("inserted batch",
			slog.String("table", table),
			slog.Int("rows", end-start),
			slog.Int("total", len(rows)))
	}
	e.logger.Info("exported table", slog.String("table", table), slog.Int("rows", len(rows)))
	return nil
}

func sqlValue(v eeg.Value) any {
	if s, ok := v.Text(); ok {
		return s
	}
	if f, ok := v.Float(); ok {
		return f
	}
	return nil
}
