package eeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer(t *testing.T) {
	data := [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	}
	c, err := NewContainer(data, []string{"Fz", "Cz"}, 500, []Event{
		{Type: "stim", Description: "s1", Onset: 2, Size: 1},
	}, "rec1")
	require.NoError(t, err)

	assert.Equal(t, 1, c.NSegments())
	assert.Equal(t, 3, c.Signal.Len())
	assert.Equal(t, []Sample{1, 2, 3}, segmentOffsets(c, 1))
	assert.Equal(t, "rec1", c.Segments.Rows[0].Recording)
	require.Len(t, c.Events, 1)
	assert.Equal(t, 1, c.Events[0].ID)
	assert.InDelta(t, 30.0, channelValue(t, c, 1, 3, "Cz"), 1e-12)
}

func TestNewContainer_Errors(t *testing.T) {
	data := [][]float64{{1, 2}}

	_, err := NewContainer(data, []string{"Fz", "Cz"}, 0, nil, "rec1")
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)

	_, err = NewContainer([][]float64{{1}}, []string{"Fz", "Cz"}, 500, nil, "rec1")
	require.ErrorAs(t, err, &schemaErr)
}

func TestNewContainer_DropsOrphanChannelEvents(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4}}
	c, err := NewContainer(data, []string{"Fz", "Cz"}, 500, []Event{
		{Type: "bad", Description: "blink", Onset: 1, Size: 1, Channel: "EOG"},
		{Type: "stim", Description: "s1", Onset: 1, Size: 1, Channel: "Fz"},
	}, "rec1")
	require.NoError(t, err)
	require.Len(t, c.Events, 1)
	assert.Equal(t, "Fz", c.Events[0].Channel)
}

func TestValidate_Detects(t *testing.T) {
	tests := []struct {
		name  string
		corrupt func(*Container)
	}{
		{"signal references unknown id", func(c *Container) { c.Signal.IDs[0] = 99 }},
		{"non-dense segments", func(c *Container) { c.Segments.Rows[1].ID = 3 }},
		{"event outside bounds", func(c *Container) { c.Events[0].Onset = 40 }},
		{"event size zero", func(c *Container) { c.Events[0].Size = 0 }},
		{"channel length mismatch", func(c *Container) {
			c.Signal.Channels[0].Data = c.Signal.Channels[0].Data[:5]
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := twoSegmentContainer(t)
			tt.corrupt(c)
			err := c.Validate()
			var consistencyErr *ConsistencyError
			require.ErrorAs(t, err, &consistencyErr)
		})
	}
}

func TestFlatten(t *testing.T) {
	c := twoSegmentContainer(t)
	long := c.Flatten()
	require.Len(t, long, 2*10*2)

	first := long[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "rec1", first.Recording)
	assert.Equal(t, Sample(1), first.Sample)
	assert.InDelta(t, 0.001, first.Time, 1e-12)
	assert.Equal(t, "X", first.Channel)
	assert.InDelta(t, 101.0, first.Amplitude, 1e-12)
}

func TestSegments_Decode(t *testing.T) {
	c := twoSegmentContainer(t)
	var rows []struct {
		ID        int     `mapstructure:"id"`
		Recording string  `mapstructure:"recording"`
		Condition string  `mapstructure:"condition"`
	}
	require.NoError(t, c.Segments.Decode(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "rec1", rows[0].Recording)
	assert.Equal(t, "a", rows[0].Condition)
	assert.Equal(t, "b", rows[1].Condition)
}
