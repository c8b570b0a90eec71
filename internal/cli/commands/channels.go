package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/eegstack-labs/eegtab/pkg/montage"
	"github.com/eegstack-labs/eegtab/pkg/reader"
)

// NewChannelsCommand creates the channels command.
func NewChannelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "channels [file.edf]",
		Short: "List montage channels with projected positions",
		Long: `Print the configured electrode layout with 2D positions under the
configured projection. With an EDF file argument, channels present in
the recording but absent from the layout are reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := activeConfig()
			if err != nil {
				return err
			}
			if cfg.Montage == "" {
				return fmt.Errorf("no montage configured\nHint: set montage in eegtab.yaml or pass --montage")
			}
			layout, err := montage.Load(cfg.Montage)
			if err != nil {
				return err
			}
			proj, err := montage.ParseProjection(cfg.Projection)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styled(titleStyle, fmt.Sprintf("Layout %s (%s projection)", layout.Name, proj)))

			points := layout.ProjectAll(proj)
			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Channel", "X", "Y", "Z", "Proj X", "Proj Y"})
			for _, ch := range layout.Channels {
				p := points[ch.Name]
				t.AppendRow(table.Row{
					ch.Name,
					fmt.Sprintf("%.3f", ch.X),
					fmt.Sprintf("%.3f", ch.Y),
					fmt.Sprintf("%.3f", ch.Z),
					fmt.Sprintf("%.3f", p.X),
					fmt.Sprintf("%.3f", p.Y),
				})
			}
			t.Render()

			if len(args) == 1 {
				c, err := reader.EDF(args[0])
				if err != nil {
					return err
				}
				if missing := layout.Missing(c.Signal.ChannelNames()); len(missing) > 0 {
					fmt.Fprintln(out, styled(errorStyle, "Channels without layout positions:"),
						strings.Join(missing, ", "))
				} else {
					fmt.Fprintln(out, styled(noteStyle, "All recorded channels have layout positions."))
				}
			}
			return nil
		},
	}
}
