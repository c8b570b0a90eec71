package cli

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/OpenPSG/edf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eegstack-labs/eegtab/internal/cli/config"

	_ "modernc.org/sqlite"
)

func writeEDF(t *testing.T, dir, name string) string {
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

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	cfgFile = ""

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand_Version(t *testing.T) {
	out, err := runRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "eegtab")
}

func TestRootCommand_InvalidEdgePolicy(t *testing.T) {
	dir := t.TempDir()
	path := writeEDF(t, dir, "a.edf")

	_, err := runRoot(t, "info", path, "--edge-policy", "wrap")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown edge policy")
}

func TestRootCommand_InfoWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	edfPath := writeEDF(t, dir, "a.edf")
	cfgPath := filepath.Join(dir, "eegtab.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("edge_policy: drop\n"), 0o644))

	out, err := runRoot(t, "info", edfPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "rec-A")
}

func TestRootCommand_ExportToSQLite(t *testing.T) {
	dir := t.TempDir()
	edfPath := writeEDF(t, dir, "a.edf")
	dbPath := filepath.Join(dir, "out.db")
	cfgPath := filepath.Join(dir, "eegtab.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
export:
  prefix: eeg_
  target:
    type: sqlite
    path: `+dbPath+"\n"), 0o644))

	out, err := runRoot(t, "export", edfPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 segments")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM eeg_signal_long").Scan(&n))
	assert.Equal(t, 8, n) // 4 samples x 2 channels

	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM eeg_segments").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestRootCommand_ExportUnknownTarget(t *testing.T) {
	dir := t.TempDir()
	edfPath := writeEDF(t, dir, "a.edf")
	cfgPath := filepath.Join(dir, "eegtab.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("export:\n  target:\n    type: oracle\n"), 0o644))

	_, err := runRoot(t, "export", edfPath, "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown adapter type "oracle"`)
}
