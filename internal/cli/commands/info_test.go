package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeTestEDF(t, dir, "a.edf")

	out, err := runCommand(t, NewInfoCommand(), path)
	require.NoError(t, err)

	assert.Contains(t, out, "Rate: 4 Hz")
	assert.Contains(t, out, "Channels: 2 (Fz, Cz)")
	assert.Contains(t, out, "rec-A")
}

func TestInfoCommand_BindsMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeTestEDF(t, dir, "a.edf")
	b := writeTestEDF(t, dir, "b.edf")

	out, err := runCommand(t, NewInfoCommand(), a, b)
	require.NoError(t, err)
	// Two segments, one per file.
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2")
}

func TestInfoCommand_MissingFile(t *testing.T) {
	_, err := runCommand(t, NewInfoCommand(), "does-not-exist.edf")
	require.Error(t, err)
}
