package eeg

// Filter retains rows or segments matching the predicate.
//
// Row-level predicates drop individual signal rows; a segment left with no
// rows is removed from all three tables. Segment-level predicates drop
// whole segments. Events whose span touches a dropped sample are dropped.
// Segment ids are renumbered densely whenever a segment is removed; when
// the predicate selects everything the receiver is returned unchanged.
func (c *Container) Filter(p Predicate) (*Container, error) {
	switch p.Scope() {
	case ScopeRow:
		return c.filterRows(p.row)
	case ScopeSegment:
		return c.filterSegments(p.segment)
	default:
		return nil, &ConsistencyError{Detail: "unclassified filter predicate"}
	}
}

func (c *Container) filterRows(pred func(RowContext) bool) (*Container, error) {
	n := c.Signal.Len()
	keepRow := make([]bool, n)
	kept := 0
	for i := 0; i < n; i++ {
		if pred(RowContext{sig: &c.Signal, row: i}) {
			keepRow[i] = true
			kept++
		}
	}
	if kept == n {
		// Fast path: nothing dropped, no renumbering.
		return c.shallow(), nil
	}

	out := c.shallow()
	sig := c.Signal.emptyLike()
	keptSamples := make(map[int]map[Sample]bool)
	for i := 0; i < n; i++ {
		if !keepRow[i] {
			continue
		}
		id := c.Signal.IDs[i]
		sig.appendRow(id, c.Signal.Samples[i], c.Signal.row(i))
		m, ok := keptSamples[id]
		if !ok {
			m = make(map[Sample]bool)
			keptSamples[id] = m
		}
		m[c.Signal.Samples[i]] = true
	}
	out.Signal = sig

	var events Events
	for _, ev := range c.Events {
		m := keptSamples[ev.ID]
		if m == nil {
			continue
		}
		contained := true
		for s := ev.Onset; s <= ev.End(); s++ {
			if !m[s] {
				contained = false
				break
			}
		}
		if contained {
			events = append(events, ev)
		}
	}
	out.Events = events

	keepID := make(map[int]bool, len(keptSamples))
	for id := range keptSamples {
		keepID[id] = true
	}
	if len(keepID) == len(c.Segments.Rows) {
		out.Segments = c.Segments.clone()
		return out, nil
	}
	out.renumberKept(keepID)
	return out, nil
}

func (c *Container) filterSegments(pred func(SegmentContext) bool) (*Container, error) {
	keepID := make(map[int]bool)
	for _, row := range c.Segments.Rows {
		if pred(SegmentContext{Info: row, Events: c.Events.ForID(row.ID)}) {
			keepID[row.ID] = true
		}
	}
	if len(keepID) == len(c.Segments.Rows) {
		return c.shallow(), nil
	}
	out := c.shallow()
	out.renumberKept(keepID)
	return out, nil
}
