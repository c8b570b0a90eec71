package eeg

// ChannelKind distinguishes recorded electrode channels from derived
// component channels (e.g. post-ICA). The distinction affects which
// default operations apply and is flagged when both kinds are mixed in
// one aggregate.
type ChannelKind uint8

const (
	// Recorded is a plain electrode channel.
	Recorded ChannelKind = iota
	// Component is a derived channel, typically an ICA component.
	Component
)

func (k ChannelKind) String() string {
	switch k {
	case Recorded:
		return "recorded"
	case Component:
		return "component"
	default:
		return "unknown"
	}
}

// ChannelColumn is one channel of the wide signal table. Data holds one
// amplitude per signal row; NaN encodes a missing sample.
type ChannelColumn struct {
	Name string
	Kind ChannelKind
	Data []float64
}

func (c ChannelColumn) clone() ChannelColumn {
	out := c
	out.Data = make([]float64, len(c.Data))
	copy(out.Data, c.Data)
	return out
}
