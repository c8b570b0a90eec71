package eeg

import "math"

// MutateOp is one channel operation applied by Mutate. Ops exist so the
// standalone verbs (Baseline, Rereference, ChannelMean) can also be
// composed and scoped inside a single Mutate call with identical results.
type MutateOp struct {
	name  string
	apply func(*Container) (*Container, error)
}

// WithBaseline scopes baseline correction (default window: offsets < 0)
// to the selected channels.
func WithBaseline(sel ChannelSelector) MutateOp {
	return MutateOp{name: "baseline", apply: func(c *Container) (*Container, error) {
		return c.baseline("baseline", nil, nil, sel)
	}}
}

// WithBaselineWindow scopes baseline correction to an explicit sample
// window and channel selection.
func WithBaselineWindow(from, to Sample, sel ChannelSelector) MutateOp {
	return MutateOp{name: "baseline_window", apply: func(c *Container) (*Container, error) {
		return c.BaselineWindow(from, to, sel)
	}}
}

// WithRereference re-references against the given channel set.
func WithRereference(refs ChannelSelector, ignoreNA bool) MutateOp {
	return MutateOp{name: "rereference", apply: func(c *Container) (*Container, error) {
		return c.Rereference(refs, ignoreNA)
	}}
}

// WithChannelMean appends a row-wise mean channel.
func WithChannelMean(name string, sel ChannelSelector, ignoreNA bool) MutateOp {
	return MutateOp{name: "channel_mean", apply: func(c *Container) (*Container, error) {
		return c.ChannelMean(name, sel, ignoreNA)
	}}
}

// WithTransform applies f to every sample of the selected channels. NA
// samples stay NA.
func WithTransform(sel ChannelSelector, f func(float64) float64) MutateOp {
	return MutateOp{name: "transform", apply: func(c *Container) (*Container, error) {
		idx, err := sel.Resolve("transform", &c.Signal)
		if err != nil {
			return nil, err
		}
		out := c.shallow()
		out.Signal = c.Signal.clone()
		for _, ch := range idx {
			col := out.Signal.Channels[ch].Data
			for i, v := range col {
				if !math.IsNaN(v) {
					col[i] = f(v)
				}
			}
		}
		return out, nil
	}}
}

// Mutate applies the operations in order, each seeing the previous
// result. The whole call is all-or-nothing: on error the receiver is
// left untouched and no partial container is returned.
func (c *Container) Mutate(ops ...MutateOp) (*Container, error) {
	out := c.shallow()
	for _, op := range ops {
		next, err := op.apply(out)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}

// MutateSegments derives or overwrites annotation columns on the segments
// table, one row at a time. f receives each segment's metadata and events
// and returns the columns to set. The one-row-per-id invariant holds by
// construction.
func (c *Container) MutateSegments(f func(SegmentContext) (map[string]Value, error)) (*Container, error) {
	out := c.shallow()
	segs := c.Segments.clone()
	for i := range segs.Rows {
		cols, err := f(SegmentContext{Info: segs.Rows[i], Events: c.Events.ForID(segs.Rows[i].ID)})
		if err != nil {
			return nil, err
		}
		for name, v := range cols {
			if name == ColRecording || name == ColSegment {
				return nil, &SchemaError{Op: "mutate_segments", Detail: "cannot overwrite built-in column " + name}
			}
			segs.addExtraName(name)
			segs.Rows[i].Extra[name] = v
		}
	}
	out.Segments = segs
	return out, nil
}
