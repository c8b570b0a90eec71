package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eegstack-labs/eegtab/internal/exporter"
	"github.com/eegstack-labs/eegtab/pkg/adapter"
	"github.com/eegstack-labs/eegtab/pkg/reader"

	// Register the built-in export targets.
	_ "github.com/eegstack-labs/eegtab/pkg/adapters/duckdb"
	_ "github.com/eegstack-labs/eegtab/pkg/adapters/postgres"
	_ "github.com/eegstack-labs/eegtab/pkg/adapters/sqlite"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "export <file.edf> [file.edf...]",
		Short: "Export recordings to a SQL database",
		Long: `Read one or more EDF files, bind them into a single container, and
write it to the configured export target as three tables: the
long-format signal view, events, and segments.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := activeConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			c, err := reader.EDFAll(ctx, args...)
			if err != nil {
				return err
			}

			sink, err := adapter.NewAdapter(cfg.Export.Target, slog.Default())
			if err != nil {
				return err
			}
			if err := sink.Connect(ctx, cfg.Export.Target); err != nil {
				return err
			}
			defer func() { _ = sink.Close() }()

			if !cmd.Flags().Changed("prefix") {
				prefix = cfg.Export.Prefix
			}
			exp := exporter.New(sink,
				exporter.WithLogger(slog.Default()),
				exporter.WithBatchSize(cfg.Export.BatchSize))
			if err := exp.Export(ctx, c, prefix); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d segments, %d samples, %d channels to %s\n",
				len(c.Segments.Rows), c.Signal.Len(), len(c.Signal.Channels), cfg.Export.Target.Type)
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Table name prefix (overrides export.prefix)")
	return cmd
}
