package eeg

import (
	"testing"
)

// twoSegmentContainer builds the canonical fixture: two segments of ten
// samples each at 1000 Hz, channels X and Y, one "stim" event per segment
// at sample 5. X holds seg*100+sample, Y its negation.
func twoSegmentContainer(t *testing.T) *Container {
	t.Helper()

	sig := Signal{Channels: []ChannelColumn{
		{Name: "X", Kind: Recorded},
		{Name: "Y", Kind: Recorded},
	}}
	for id := 1; id <= 2; id++ {
		for s := 1; s <= 10; s++ {
			v := float64(id*100 + s)
			sig.appendRow(id, Sample(s), []float64{v, -v})
		}
	}

	c := &Container{
		Signal: sig,
		Rate:   1000,
		Events: Events{
			{ID: 1, Type: "stim", Description: "stim A", Onset: 5, Size: 1},
			{ID: 2, Type: "stim", Description: "stim B", Onset: 5, Size: 1},
		},
		Segments: Segments{
			ExtraNames: []string{"condition"},
			Rows: []SegmentInfo{
				{ID: 1, Recording: "rec1", Segment: 1, Extra: map[string]Value{"condition": Str("a")}},
				{ID: 2, Recording: "rec1", Segment: 2, Extra: map[string]Value{"condition": Str("b")}},
			},
		},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("fixture container invalid: %v", err)
	}
	return c
}

// segmentOffsets returns the sample offsets of one segment in row order.
func segmentOffsets(c *Container, id int) []Sample {
	var out []Sample
	for i, rid := range c.Signal.IDs {
		if rid == id {
			out = append(out, c.Signal.Samples[i])
		}
	}
	return out
}

// channelValue returns the amplitude of channel name at (id, sample).
func channelValue(t *testing.T, c *Container, id int, smp Sample, name string) float64 {
	t.Helper()
	ch, ok := c.Signal.Channel(name)
	if !ok {
		t.Fatalf("channel %q not found", name)
	}
	for i, rid := range c.Signal.IDs {
		if rid == id && c.Signal.Samples[i] == smp {
			return c.Signal.Channels[ch].Data[i]
		}
	}
	t.Fatalf("no row for id %d sample %d", id, smp)
	return 0
}

// requireValid fails the test when the container violates its invariants
// or its segments table is not densely numbered.
func requireValid(t *testing.T, c *Container) {
	t.Helper()
	if err := c.Validate(); err != nil {
		t.Fatalf("container invalid after verb: %v", err)
	}
}
