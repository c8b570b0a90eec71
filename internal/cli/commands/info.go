package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/eegstack-labs/eegtab/pkg/eeg"
	"github.com/eegstack-labs/eegtab/pkg/reader"
)

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.edf> [file.edf...]",
		Short: "Summarize EDF recordings",
		Long: `Read one or more EDF files and print the resulting container:
sampling rate, channels, and a per-segment table with sample and event
counts. Multiple files are bound in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := reader.EDFAll(cmd.Context(), args...)
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), c.WithLogger(slog.Default()))
			return nil
		},
	}
}

func printInfo(w io.Writer, c *eeg.Container) {
	fmt.Fprintln(w, styled(titleStyle, "Recording summary"))
	fmt.Fprintf(w, "Rate: %g Hz\n", float64(c.Rate))
	fmt.Fprintf(w, "Channels: %d (%s)\n", len(c.Signal.Channels), strings.Join(c.Signal.ChannelNames(), ", "))

	samples := make(map[int]int, len(c.Segments.Rows))
	for _, id := range c.Signal.IDs {
		samples[id]++
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Segment", "Recording", "Samples", "Duration (s)", "Events"})
	for _, row := range c.Segments.Rows {
		n := samples[row.ID]
		t.AppendRow(table.Row{
			row.ID,
			row.Recording,
			n,
			fmt.Sprintf("%.3f", float64(n)/float64(c.Rate)),
			len(c.Events.ForID(row.ID)),
		})
	}
	t.Render()
}
