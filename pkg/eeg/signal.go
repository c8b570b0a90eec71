package eeg

// Signal is the wide sample table: one row per (segment id, sample offset),
// one column per channel. Rows are stored segment-major, samples ascending
// within each segment.
type Signal struct {
	IDs      []int
	Samples  []Sample
	Channels []ChannelColumn
}

// Len returns the number of signal rows.
func (s *Signal) Len() int { return len(s.IDs) }

// Channel returns the index of the named channel column.
func (s *Signal) Channel(name string) (int, bool) {
	for i := range s.Channels {
		if s.Channels[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

// ChannelNames returns the channel names in column order.
func (s *Signal) ChannelNames() []string {
	names := make([]string, len(s.Channels))
	for i := range s.Channels {
		names[i] = s.Channels[i].Name
	}
	return names
}

func (s *Signal) clone() Signal {
	out := Signal{
		IDs:      make([]int, len(s.IDs)),
		Samples:  make([]Sample, len(s.Samples)),
		Channels: make([]ChannelColumn, len(s.Channels)),
	}
	copy(out.IDs, s.IDs)
	copy(out.Samples, s.Samples)
	for i := range s.Channels {
		out.Channels[i] = s.Channels[i].clone()
	}
	return out
}

// emptyLike returns a signal with the same channel schema and no rows.
func (s *Signal) emptyLike() Signal {
	out := Signal{Channels: make([]ChannelColumn, len(s.Channels))}
	for i, ch := range s.Channels {
		out.Channels[i] = ChannelColumn{Name: ch.Name, Kind: ch.Kind}
	}
	return out
}

// appendRow appends one row; vals must be in channel column order.
func (s *Signal) appendRow(id int, smp Sample, vals []float64) {
	s.IDs = append(s.IDs, id)
	s.Samples = append(s.Samples, smp)
	for i := range s.Channels {
		s.Channels[i].Data = append(s.Channels[i].Data, vals[i])
	}
}

// row returns the channel values of one row in column order.
func (s *Signal) row(i int) []float64 {
	vals := make([]float64, len(s.Channels))
	for c := range s.Channels {
		vals[c] = s.Channels[c].Data[i]
	}
	return vals
}

// rowIndex builds a (segment id, sample offset) -> row lookup.
func (s *Signal) rowIndex() map[int]map[Sample]int {
	idx := make(map[int]map[Sample]int)
	for i, id := range s.IDs {
		m, ok := idx[id]
		if !ok {
			m = make(map[Sample]int)
			idx[id] = m
		}
		m[s.Samples[i]] = i
	}
	return idx
}

// bounds returns the minimum and maximum sample offset per segment id.
func (s *Signal) bounds() map[int][2]Sample {
	b := make(map[int][2]Sample)
	for i, id := range s.IDs {
		smp := s.Samples[i]
		cur, ok := b[id]
		if !ok {
			b[id] = [2]Sample{smp, smp}
			continue
		}
		if smp < cur[0] {
			cur[0] = smp
		}
		if smp > cur[1] {
			cur[1] = smp
		}
		b[id] = cur
	}
	return b
}

// sameSchema reports whether two signals have identical channel names and
// kinds in identical order.
func (s *Signal) sameSchema(o *Signal) bool {
	if len(s.Channels) != len(o.Channels) {
		return false
	}
	for i := range s.Channels {
		if s.Channels[i].Name != o.Channels[i].Name || s.Channels[i].Kind != o.Channels[i].Kind {
			return false
		}
	}
	return true
}
