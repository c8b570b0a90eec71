package eeg

// Scope classifies a filter predicate once per call. Row-level predicates
// drop individual signal rows; segment-level predicates keep or drop whole
// segments. Downstream code branches on the tag instead of inspecting
// which columns the predicate mentions.
type Scope uint8

const (
	// ScopeRow evaluates the predicate against individual signal rows.
	ScopeRow Scope = iota
	// ScopeSegment evaluates the predicate against whole segments.
	ScopeSegment
)

// RowContext gives a row-level predicate access to one signal row.
type RowContext struct {
	sig *Signal
	row int
}

// ID returns the segment id of the row.
func (rc RowContext) ID() int { return rc.sig.IDs[rc.row] }

// Sample returns the sample offset of the row.
func (rc RowContext) Sample() Sample { return rc.sig.Samples[rc.row] }

// Value returns the amplitude of the named channel at this row.
func (rc RowContext) Value(channel string) (float64, bool) {
	i, ok := rc.sig.Channel(channel)
	if !ok {
		return 0, false
	}
	return rc.sig.Channels[i].Data[rc.row], true
}

// SegmentContext gives a segment-level predicate access to one segment's
// metadata row and its events.
type SegmentContext struct {
	Info   SegmentInfo
	Events Events
}

// Predicate is the tagged result of classifying a filter condition.
type Predicate struct {
	scope   Scope
	row     func(RowContext) bool
	segment func(SegmentContext) bool
}

// Scope returns the predicate's classification.
func (p Predicate) Scope() Scope { return p.scope }

// Rows builds a row-level predicate over sample-level columns.
func Rows(f func(RowContext) bool) Predicate {
	return Predicate{scope: ScopeRow, row: f}
}

// Where builds a segment-level predicate over segment metadata and events.
func Where(f func(SegmentContext) bool) Predicate {
	return Predicate{scope: ScopeSegment, segment: f}
}

// AnyEvent broadcasts an events-only condition to segment scope: a segment
// is retained iff at least one of its events satisfies f.
func AnyEvent(f func(Event) bool) Predicate {
	return Where(func(sc SegmentContext) bool {
		for _, ev := range sc.Events {
			if f(ev) {
				return true
			}
		}
		return false
	})
}
