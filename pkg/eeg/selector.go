package eeg

// ChannelSelector is an explicit column-selector value: a fixed name set,
// a channel-kind predicate, or all channels. Selectors are resolved
// against the signal schema when a verb runs; a name absent from the
// schema yields a SchemaError.
type ChannelSelector struct {
	names []string
	kind  *ChannelKind
	all   bool
}

// AllChannels selects every channel column.
func AllChannels() ChannelSelector { return ChannelSelector{all: true} }

// Channels selects the named channels, in the given order.
func Channels(names ...string) ChannelSelector {
	return ChannelSelector{names: append([]string(nil), names...)}
}

// RecordedChannels selects all plain electrode channels.
func RecordedChannels() ChannelSelector {
	k := Recorded
	return ChannelSelector{kind: &k}
}

// ComponentChannels selects all derived component channels.
func ComponentChannels() ChannelSelector {
	k := Component
	return ChannelSelector{kind: &k}
}

// Resolve returns the selected column indices for op, in selection order.
func (sel ChannelSelector) Resolve(op string, sig *Signal) ([]int, error) {
	if sel.all {
		idx := make([]int, len(sig.Channels))
		for i := range idx {
			idx[i] = i
		}
		return idx, nil
	}
	if sel.kind != nil {
		var idx []int
		for i := range sig.Channels {
			if sig.Channels[i].Kind == *sel.kind {
				idx = append(idx, i)
			}
		}
		return idx, nil
	}
	idx := make([]int, 0, len(sel.names))
	var missing []string
	for _, name := range sel.names {
		i, ok := sig.Channel(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		idx = append(idx, i)
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Op: op, Missing: missing}
	}
	return idx, nil
}

// mixedKinds reports whether the resolved selection contains both recorded
// and component channels.
func mixedKinds(sig *Signal, idx []int) bool {
	var sawRecorded, sawComponent bool
	for _, i := range idx {
		switch sig.Channels[i].Kind {
		case Recorded:
			sawRecorded = true
		case Component:
			sawComponent = true
		}
	}
	return sawRecorded && sawComponent
}
