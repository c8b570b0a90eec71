package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/OpenPSG/edf"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// writeTestEDF writes a two-channel, one-second EDF file and returns
// its path. Sample values use an identity digital range so they survive
// the round trip exactly.
func writeTestEDF(t *testing.T, dir, name string) string {
	t.Helper()

	signal := func(label string) edf.SignalHeader {
		return edf.SignalHeader{
			Label:             label,
			PhysicalDimension: "uV",
			PhysicalMin:       -32768,
			PhysicalMax:       32767,
			DigitalMin:        -32768,
			DigitalMax:        32767,
			SamplesPerRecord:  4,
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	require.NoError(t, err)
	defer f.Close()

	ew, err := edf.Create(f, edf.Header{
		Version:            edf.Version0,
		PatientID:          "anonymous",
		RecordingID:        "rec-A",
		StartTime:          time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		DataRecordDuration: time.Second,
		SignalCount:        2,
		Signals:            []edf.SignalHeader{signal("Fz"), signal("Cz")},
	})
	require.NoError(t, err)
	require.NoError(t, ew.WriteRecord([][]float64{{1, 2, 3, 4}, {-1, -2, -3, -4}}))
	require.NoError(t, ew.Close())
	return path
}

// runCommand executes a command with args and returns its combined output.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
