package eeg

import (
	"fmt"
	"log/slog"
	"sort"
)

// Container bundles the signal, events, and segments tables with the
// shared sampling rate and optional grouping metadata.
//
// The exported tables may be read freely; verbs never mutate them in
// place. Constructing a Container by hand is supported for tests and
// readers, but Validate should be called afterwards.
type Container struct {
	Signal   Signal
	Events   Events
	Segments Segments
	Rate     Rate

	groups []string
	logger *slog.Logger
}

// NewContainer builds a single-segment container from parsed samples.
// data is samples x channels; sample offsets start at 1. Events reference
// segment id 1 regardless of the ID they carry. Events scoped to a channel
// absent from channels are dropped.
func NewContainer(data [][]float64, channels []string, rate Rate, events []Event, recording string) (*Container, error) {
	if !rate.Valid() {
		return nil, &SchemaError{Op: "new", Detail: fmt.Sprintf("sampling rate must be positive, got %g", float64(rate))}
	}
	for i, row := range data {
		if len(row) != len(channels) {
			return nil, &SchemaError{Op: "new", Detail: fmt.Sprintf("row %d has %d values for %d channels", i, len(row), len(channels))}
		}
	}

	sig := Signal{Channels: make([]ChannelColumn, len(channels))}
	for i, name := range channels {
		sig.Channels[i] = ChannelColumn{Name: name, Kind: Recorded, Data: make([]float64, 0, len(data))}
	}
	for i, row := range data {
		sig.IDs = append(sig.IDs, 1)
		sig.Samples = append(sig.Samples, Sample(i+1))
		for c := range sig.Channels {
			sig.Channels[c].Data = append(sig.Channels[c].Data, row[c])
		}
	}

	c := &Container{
		Signal: sig,
		Rate:   rate,
		Segments: Segments{
			Rows: []SegmentInfo{{ID: 1, Recording: recording, Segment: 1, Extra: map[string]Value{}}},
		},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, ev := range events {
		ev.ID = 1
		if ev.Size < 1 {
			ev.Size = 1
		}
		c.Events = append(c.Events, ev)
	}
	c.dropOrphanEvents("new")

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// WithLogger returns a copy of the container using l for warnings.
func (c *Container) WithLogger(l *slog.Logger) *Container {
	out := c.shallow()
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	out.logger = l
	return out
}

func (c *Container) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// Groups returns the active group key, outermost first.
func (c *Container) Groups() []string { return append([]string(nil), c.groups...) }

// NSegments returns the number of segments.
func (c *Container) NSegments() int { return len(c.Segments.Rows) }

// shallow copies the container struct, sharing table storage. Verbs use it
// for fast paths and replace the tables they rebuild.
func (c *Container) shallow() *Container {
	out := *c
	out.groups = append([]string(nil), c.groups...)
	return &out
}

// Validate checks the cross-table invariants: a positive shared rate,
// equal column lengths in the signal table, a densely numbered segments
// table with one row per id, signal and event ids that all resolve to a
// segments row, and event spans inside their segment's sample bounds.
func (c *Container) Validate() error {
	if !c.Rate.Valid() {
		return &ConsistencyError{Detail: fmt.Sprintf("invalid sampling rate %g", float64(c.Rate))}
	}
	n := len(c.Signal.IDs)
	if len(c.Signal.Samples) != n {
		return &ConsistencyError{Detail: "signal sample column length mismatch"}
	}
	for _, ch := range c.Signal.Channels {
		if len(ch.Data) != n {
			return &ConsistencyError{Detail: fmt.Sprintf("channel %q length mismatch", ch.Name)}
		}
	}

	ids := make(map[int]bool, len(c.Segments.Rows))
	for i, row := range c.Segments.Rows {
		if row.ID != i+1 {
			return &ConsistencyError{Detail: fmt.Sprintf("segments table not densely numbered: row %d has id %d", i, row.ID)}
		}
		if ids[row.ID] {
			return &ConsistencyError{Detail: fmt.Sprintf("duplicate segments row for id %d", row.ID)}
		}
		ids[row.ID] = true
	}
	for _, id := range c.Signal.IDs {
		if !ids[id] {
			return &ConsistencyError{Detail: fmt.Sprintf("signal references unknown segment id %d", id)}
		}
	}

	bounds := c.Signal.bounds()
	for _, ev := range c.Events {
		if !ids[ev.ID] {
			return &ConsistencyError{Detail: fmt.Sprintf("event references unknown segment id %d", ev.ID)}
		}
		if ev.Size < 1 {
			return &ConsistencyError{Detail: fmt.Sprintf("event in segment %d has size %d", ev.ID, ev.Size)}
		}
		if b, ok := bounds[ev.ID]; ok {
			if ev.Onset < b[0] || ev.End() > b[1] {
				return &ConsistencyError{Detail: fmt.Sprintf("event span [%d, %d] outside segment %d bounds [%d, %d]",
					ev.Onset, ev.End(), ev.ID, b[0], b[1])}
			}
		}
	}
	return nil
}

// dropOrphanEvents removes events scoped to a channel absent from the
// signal table, warning once per channel name.
func (c *Container) dropOrphanEvents(op string) {
	warned := map[string]bool{}
	kept := c.Events[:0:0]
	for _, ev := range c.Events {
		if ev.Channel != "" {
			if _, ok := c.Signal.Channel(ev.Channel); !ok {
				if !warned[ev.Channel] {
					c.log().Warn("dropping events scoped to missing channel", "op", op, "channel", ev.Channel)
					warned[ev.Channel] = true
				}
				continue
			}
		}
		kept = append(kept, ev)
	}
	c.Events = kept
}

// renumberKept rebuilds all three tables keeping only the segment ids in
// keep, relabeled densely in ascending old-id order.
func (c *Container) renumberKept(keep map[int]bool) {
	oldIDs := make([]int, 0, len(keep))
	for id := range keep {
		oldIDs = append(oldIDs, id)
	}
	sort.Ints(oldIDs)
	remap := make(map[int]int, len(oldIDs))
	for i, id := range oldIDs {
		remap[id] = i + 1
	}

	sig := c.Signal.emptyLike()
	for i, id := range c.Signal.IDs {
		if newID, ok := remap[id]; ok {
			sig.appendRow(newID, c.Signal.Samples[i], c.Signal.row(i))
		}
	}
	c.Signal = sig

	var events Events
	for _, ev := range c.Events {
		if newID, ok := remap[ev.ID]; ok {
			ev.ID = newID
			events = append(events, ev)
		}
	}
	c.Events = events

	segs := Segments{ExtraNames: append([]string(nil), c.Segments.ExtraNames...)}
	for _, id := range oldIDs {
		row, ok := c.Segments.Row(id)
		if !ok {
			continue
		}
		row = row.cloneRow()
		row.ID = remap[id]
		segs.Rows = append(segs.Rows, row)
	}
	c.Segments = segs
}
