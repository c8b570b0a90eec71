package duckdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eegstack-labs/eegtab/pkg/adapter"
)

func TestRegistered(t *testing.T) {
	assert.True(t, adapter.IsRegistered("duckdb"))
}

func TestConnect_InMemory(t *testing.T) {
	a := New(nil)
	ctx := context.Background()

	require.NoError(t, a.Connect(ctx, adapter.Config{Type: "duckdb"}))
	defer a.Close()

	assert.True(t, a.IsConnected())
	require.NoError(t, a.Exec(ctx, "CREATE TABLE signal_long (segment_id INTEGER, amplitude DOUBLE)"))
	require.NoError(t, a.Insert(ctx, "signal_long", []string{"segment_id", "amplitude"}, [][]any{
		{1, 0.5},
	}))

	var count int
	require.NoError(t, a.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM signal_long").Scan(&count))
	assert.Equal(t, 1, count)
}
