package eeg

import (
	"strings"
)

// AggregateFunc reduces a slice of amplitudes to one value. Implementations
// decide how NA samples are treated.
type AggregateFunc func(vals []float64) float64

// Mean returns an aggregate computing the arithmetic mean. With ignoreNA,
// NA samples are skipped; otherwise any NA makes the result NA.
func Mean(ignoreNA bool) AggregateFunc {
	return func(vals []float64) float64 {
		return rowMean(vals, ignoreNA)
	}
}

// Summarize aggregates the selected channels within the container's group
// key. Grouping columns come from the segments table; when the pseudo-
// column ".sample" is part of the key the aggregation runs per sample
// offset (the usual ERP average), otherwise all samples of a group pool
// into a single row at offset 0.
//
// The result has one segment per group carrying the grouping columns as
// metadata, no events, and the group key of the input. Aggregating a
// selection that mixes recorded and component channels is allowed but
// logged as a warning.
func (c *Container) Summarize(fn AggregateFunc, sel ChannelSelector) (*Container, error) {
	idx, err := sel.Resolve("summarize", &c.Signal)
	if err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return nil, &SchemaError{Op: "summarize", Detail: "empty channel selection"}
	}
	if mixedKinds(&c.Signal, idx) {
		c.log().Warn("summarize mixes recorded and component channels", "op", "summarize")
	}

	bySample := false
	var segCols []string
	for _, g := range c.groups {
		if g == ColSample {
			bySample = true
			continue
		}
		segCols = append(segCols, g)
	}

	// Group key per segment id, from the segment-level grouping columns.
	keyOf := make(map[int]string, len(c.Segments.Rows))
	keyRow := make(map[string]SegmentInfo)
	var keyOrder []string
	for _, row := range c.Segments.Rows {
		parts := make([]string, len(segCols))
		for i, col := range segCols {
			v, ok := c.Segments.columnValue(row, col)
			if !ok {
				return nil, &SchemaError{Op: "summarize", Missing: []string{col}}
			}
			parts[i] = v.String()
		}
		key := strings.Join(parts, joinKeySep)
		keyOf[row.ID] = key
		if _, seen := keyRow[key]; !seen {
			keyRow[key] = row
			keyOrder = append(keyOrder, key)
		}
	}

	// Collect amplitudes per (group, sample offset, channel).
	type cell struct {
		key string
		off Sample
	}
	pool := make(map[cell][][]float64)
	var cellOrder []cell
	for i, id := range c.Signal.IDs {
		off := Sample(0)
		if bySample {
			off = c.Signal.Samples[i]
		}
		cl := cell{key: keyOf[id], off: off}
		vals, seen := pool[cl]
		if !seen {
			vals = make([][]float64, len(idx))
			cellOrder = append(cellOrder, cl)
		}
		for j, ch := range idx {
			vals[j] = append(vals[j], c.Signal.Channels[ch].Data[i])
		}
		pool[cl] = vals
	}

	out := c.shallow()
	out.Events = nil
	out.Signal = Signal{Channels: make([]ChannelColumn, len(idx))}
	for j, ch := range idx {
		out.Signal.Channels[j] = ChannelColumn{Name: c.Signal.Channels[ch].Name, Kind: c.Signal.Channels[ch].Kind}
	}

	// One segment per group, numbered in first-appearance order.
	groupID := make(map[string]int, len(keyOrder))
	segs := Segments{}
	for _, col := range segCols {
		if col != ColRecording && col != ColSegment {
			segs.addExtraName(col)
		}
	}
	for i, key := range keyOrder {
		src := keyRow[key]
		row := SegmentInfo{ID: i + 1, Segment: i + 1, Extra: map[string]Value{}}
		for _, col := range segCols {
			v, _ := c.Segments.columnValue(src, col)
			switch col {
			case ColRecording:
				row.Recording = src.Recording
			case ColSegment:
				row.Segment = src.Segment
			default:
				row.Extra[col] = v
			}
		}
		segs.Rows = append(segs.Rows, row)
		groupID[key] = i + 1
	}
	out.Segments = segs

	row := make([]float64, len(idx))
	for _, cl := range cellOrder {
		vals := pool[cl]
		for j := range idx {
			row[j] = fn(vals[j])
		}
		out.Signal.appendRow(groupID[cl.key], cl.off, row)
	}
	return out, nil
}
