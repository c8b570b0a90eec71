package eeg

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// naMean returns the mean of vals ignoring NA samples, or NaN when no
// value remains.
func naMean(vals []float64) float64 {
	kept := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return math.NaN()
	}
	return stat.Mean(kept, nil)
}

// rowMean returns the mean of vals; with ignoreNA, NA samples are skipped,
// otherwise any NA makes the result NA.
func rowMean(vals []float64, ignoreNA bool) float64 {
	if !ignoreNA {
		return floats.Sum(vals) / float64(len(vals))
	}
	return naMean(vals)
}

// Baseline subtracts, per segment and per channel, the mean amplitude over
// the default reference window (all samples with offset < 0) from every
// sample. All channels are corrected; use BaselineWindow to scope the
// operation or change the window. NA samples are excluded from the mean.
func (c *Container) Baseline() (*Container, error) {
	return c.baseline("baseline", nil, nil, AllChannels())
}

// BaselineWindow is the scoped form of Baseline: the reference window is
// [from, to] in sample offsets and only the selected channels are
// corrected.
func (c *Container) BaselineWindow(from, to Sample, sel ChannelSelector) (*Container, error) {
	return c.baseline("baseline_window", &from, &to, sel)
}

func (c *Container) baseline(op string, from, to *Sample, sel ChannelSelector) (*Container, error) {
	idx, err := sel.Resolve(op, &c.Signal)
	if err != nil {
		return nil, err
	}
	inWindow := func(s Sample) bool {
		if from == nil || to == nil {
			return s < 0
		}
		return s >= *from && s <= *to
	}

	out := c.shallow()
	out.Signal = c.Signal.clone()

	for _, ch := range idx {
		col := out.Signal.Channels[ch].Data
		// Reference mean per segment, then subtract from the whole segment.
		window := make(map[int][]float64)
		for i, id := range out.Signal.IDs {
			if inWindow(out.Signal.Samples[i]) {
				window[id] = append(window[id], col[i])
			}
		}
		means := make(map[int]float64, len(window))
		for id, vals := range window {
			means[id] = naMean(vals)
		}
		for i, id := range out.Signal.IDs {
			if m, ok := means[id]; ok {
				col[i] -= m
			} else {
				col[i] = math.NaN()
			}
		}
	}
	return out, nil
}

// Rereference subtracts, per sample, the mean of the reference channels
// from every recorded non-reference channel. Component channels are left
// untouched. A reference channel absent from the signal table fails with
// a SchemaError.
func (c *Container) Rereference(refs ChannelSelector, ignoreNA bool) (*Container, error) {
	refIdx, err := refs.Resolve("rereference", &c.Signal)
	if err != nil {
		return nil, err
	}
	if len(refIdx) == 0 {
		return nil, &SchemaError{Op: "rereference", Detail: "empty reference channel set"}
	}
	isRef := make(map[int]bool, len(refIdx))
	for _, i := range refIdx {
		isRef[i] = true
	}

	out := c.shallow()
	out.Signal = c.Signal.clone()

	vals := make([]float64, len(refIdx))
	for row := 0; row < out.Signal.Len(); row++ {
		for j, ch := range refIdx {
			vals[j] = c.Signal.Channels[ch].Data[row]
		}
		m := rowMean(vals, ignoreNA)
		for ch := range out.Signal.Channels {
			if isRef[ch] || out.Signal.Channels[ch].Kind != Recorded {
				continue
			}
			out.Signal.Channels[ch].Data[row] -= m
		}
	}
	return out, nil
}

// ChannelMean appends a channel named name holding the row-wise mean of
// the selected channels. With ignoreNA, NA samples are excluded per row.
// The new channel is a component channel iff every selected channel is;
// mixing recorded and component channels is allowed but logged as a
// warning because the composite can be misleading.
func (c *Container) ChannelMean(name string, sel ChannelSelector, ignoreNA bool) (*Container, error) {
	idx, err := sel.Resolve("channel_mean", &c.Signal)
	if err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return nil, &SchemaError{Op: "channel_mean", Detail: "empty channel selection"}
	}
	if _, exists := c.Signal.Channel(name); exists {
		return nil, &SchemaError{Op: "channel_mean", Detail: "channel " + name + " already exists"}
	}
	if mixedKinds(&c.Signal, idx) {
		c.log().Warn("channel mean mixes recorded and component channels", "op", "channel_mean", "channel", name)
	}

	kind := Component
	for _, i := range idx {
		if c.Signal.Channels[i].Kind != Component {
			kind = Recorded
			break
		}
	}

	out := c.shallow()
	out.Signal = c.Signal.clone()
	data := make([]float64, out.Signal.Len())
	vals := make([]float64, len(idx))
	for row := range data {
		for j, ch := range idx {
			vals[j] = c.Signal.Channels[ch].Data[row]
		}
		data[row] = rowMean(vals, ignoreNA)
	}
	out.Signal.Channels = append(out.Signal.Channels, ChannelColumn{Name: name, Kind: kind, Data: data})
	return out, nil
}
