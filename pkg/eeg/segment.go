package eeg

import (
	"fmt"
	"math"
	"sort"
)

// Window is a segmentation window in seconds around an anchor event.
// Before is typically negative (pre-stimulus baseline).
type Window struct {
	Before float64
	After  float64
}

// EdgePolicy controls what happens when a segmentation window extends
// beyond the samples available in the source segment. The policy is
// applied uniformly by Segment.
type EdgePolicy uint8

const (
	// EdgeTruncateNA keeps the segment and pads missing samples with NA,
	// preserving rectangular tables. This is the default.
	EdgeTruncateNA EdgePolicy = iota
	// EdgeDrop discards segments whose window is incomplete.
	EdgeDrop
	// EdgeError fails the whole call with a BoundsError.
	EdgeError
)

// DescriptionColumn is the segments-table column added by Segment holding
// the anchor event's description.
const DescriptionColumn = "description"

// Segment cuts new segments around every event matching anchor. Each new
// segment covers [before, after] samples relative to the anchor's onset
// on the original timeline, with offset 0 at the anchor. Segments are
// numbered in anchor occurrence order (segment id, then onset, ties by
// original event order). Original events overlapping a window are copied
// into it with offsets re-expressed relative to the new zero and spans
// clamped to the window. Segments-table rows inherit the source segment's
// recording and annotation columns, plus the anchor description.
func (c *Container) Segment(anchor func(Event) bool, w Window, policy EdgePolicy) (*Container, error) {
	before := c.Rate.Samples(w.Before)
	after := c.Rate.Samples(w.After)
	if before > after {
		return nil, &SchemaError{Op: "segment", Detail: fmt.Sprintf("window [%g, %g] is empty", w.Before, w.After)}
	}

	// Anchors in occurrence order, stable on original event order.
	type anchorRef struct {
		ev    Event
		order int
	}
	var anchors []anchorRef
	for i, ev := range c.Events {
		if anchor(ev) {
			anchors = append(anchors, anchorRef{ev: ev, order: i})
		}
	}
	sort.SliceStable(anchors, func(i, j int) bool {
		a, b := anchors[i], anchors[j]
		if a.ev.ID != b.ev.ID {
			return a.ev.ID < b.ev.ID
		}
		if a.ev.Onset != b.ev.Onset {
			return a.ev.Onset < b.ev.Onset
		}
		return a.order < b.order
	})

	idx := c.Signal.rowIndex()

	out := c.shallow()
	out.Signal = c.Signal.emptyLike()
	out.Events = nil
	out.Segments = Segments{ExtraNames: append([]string(nil), c.Segments.ExtraNames...)}
	out.Segments.addExtraName(DescriptionColumn)

	naRow := make([]float64, len(c.Signal.Channels))
	for i := range naRow {
		naRow[i] = math.NaN()
	}

	newID := 0
	for _, a := range anchors {
		rows := idx[a.ev.ID]
		missing := 0
		for off := before; off <= after; off++ {
			if _, ok := rows[a.ev.Onset+off]; !ok {
				missing++
			}
		}
		if missing > 0 {
			switch policy {
			case EdgeDrop:
				c.log().Warn("dropping edge-truncated segment", "op", "segment",
					"anchor", a.ev.Description, "source_id", a.ev.ID, "missing_samples", missing)
				continue
			case EdgeError:
				return nil, &BoundsError{Op: "segment", ID: a.ev.ID, From: a.ev.Onset + before, To: a.ev.Onset + after}
			default:
				c.log().Warn("padding edge-truncated segment with NA", "op", "segment",
					"anchor", a.ev.Description, "source_id", a.ev.ID, "missing_samples", missing)
			}
		}

		newID++
		for off := before; off <= after; off++ {
			if row, ok := rows[a.ev.Onset+off]; ok {
				out.Signal.appendRow(newID, off, c.Signal.row(row))
			} else {
				out.Signal.appendRow(newID, off, naRow)
			}
		}

		// Copy overlapping original events, re-based on the new zero.
		for _, ev := range c.Events {
			if ev.ID != a.ev.ID {
				continue
			}
			start := ev.Onset - a.ev.Onset
			end := ev.End() - a.ev.Onset
			if end < before || start > after {
				continue
			}
			if start < before {
				start = before
			}
			if end > after {
				end = after
			}
			out.Events = append(out.Events, Event{
				ID:          newID,
				Type:        ev.Type,
				Description: ev.Description,
				Onset:       start,
				Size:        int(end-start) + 1,
				Channel:     ev.Channel,
			})
		}

		src, ok := c.Segments.Row(a.ev.ID)
		if !ok {
			return nil, &ConsistencyError{Detail: fmt.Sprintf("anchor event references unknown segment id %d", a.ev.ID)}
		}
		row := src.cloneRow()
		row.ID = newID
		row.Segment = newID
		row.Extra[DescriptionColumn] = Str(a.ev.Description)
		out.Segments.Rows = append(out.Segments.Rows, row)
	}

	return out, nil
}
