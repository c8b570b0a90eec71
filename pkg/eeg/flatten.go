package eeg

// LongRow is one row of the flattened long-format view: one segment x
// sample x channel combination with derived physical time.
type LongRow struct {
	ID        int
	Recording string
	Sample    Sample
	Time      float64
	Channel   string
	Kind      ChannelKind
	Amplitude float64
}

// Flatten materializes the long-format view consumed by plotting and
// export collaborators. Rows come out segment-major, then sample, then
// channel column order.
func (c *Container) Flatten() []LongRow {
	recording := make(map[int]string, len(c.Segments.Rows))
	for _, row := range c.Segments.Rows {
		recording[row.ID] = row.Recording
	}

	out := make([]LongRow, 0, c.Signal.Len()*len(c.Signal.Channels))
	for i := 0; i < c.Signal.Len(); i++ {
		id := c.Signal.IDs[i]
		smp := c.Signal.Samples[i]
		t := c.Rate.Seconds(smp)
		for _, ch := range c.Signal.Channels {
			out = append(out, LongRow{
				ID:        id,
				Recording: recording[id],
				Sample:    smp,
				Time:      t,
				Channel:   ch.Name,
				Kind:      ch.Kind,
				Amplitude: ch.Data[i],
			})
		}
	}
	return out
}
