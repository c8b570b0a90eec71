package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	intconfig "github.com/eegstack-labs/eegtab/internal/config"
	"github.com/eegstack-labs/eegtab/pkg/eeg"
	"github.com/eegstack-labs/eegtab/pkg/reader"
)

// NewSegmentCommand creates the segment command.
func NewSegmentCommand() *cobra.Command {
	var (
		eventType string
		descr     string
		before    float64
		after     float64
	)

	cmd := &cobra.Command{
		Use:   "segment <file.edf>",
		Short: "Cut a recording into event-locked segments",
		Long: `Read an EDF recording and cut segments around every event matching
the given type and description, using the configured edge policy for
windows that leave the recording. Prints a summary of the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := activeConfig()
			if err != nil {
				return err
			}
			policy, err := intconfig.ParseEdgePolicy(cfg.EdgePolicy)
			if err != nil {
				return err
			}
			if eventType == "" && descr == "" {
				return fmt.Errorf("no anchor given\nHint: pass --type and/or --description to select anchor events")
			}

			c, err := reader.EDF(args[0])
			if err != nil {
				return err
			}
			c = c.WithLogger(slog.Default())

			anchor := func(ev eeg.Event) bool {
				if eventType != "" && ev.Type != eventType {
					return false
				}
				if descr != "" && ev.Description != descr {
					return false
				}
				return true
			}
			out, err := c.Segment(anchor, eeg.Window{Before: before, After: after}, policy)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Segments.Rows) == 0 {
				fmt.Fprintln(w, styled(noteStyle, "No matching anchor events; no segments produced."))
				return nil
			}
			fmt.Fprintf(w, "Cut %d segments of %d samples each (window [%g, %g] s at %g Hz)\n",
				len(out.Segments.Rows),
				out.Signal.Len()/len(out.Segments.Rows),
				before, after, float64(out.Rate))
			printInfo(w, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&eventType, "type", "", "Anchor event type")
	cmd.Flags().StringVar(&descr, "description", "", "Anchor event description")
	cmd.Flags().Float64Var(&before, "before", 0, "Window start in seconds relative to onset (negative for pre-stimulus)")
	cmd.Flags().Float64Var(&after, "after", 0, "Window end in seconds relative to onset")
	return cmd
}
