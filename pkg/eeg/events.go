package eeg

// Event is one marker, annotation, or derived flag. Channel scopes the
// event to a single channel; the empty string applies to all channels.
type Event struct {
	ID          int
	Type        string
	Description string
	Onset       Sample
	Size        int // span in samples, >= 1
	Channel     string
}

// End returns the last sample offset covered by the event.
func (e Event) End() Sample { return e.Onset + Sample(e.Size) - 1 }

// Events is the events table, ordered by insertion.
type Events []Event

// ForID returns the events belonging to one segment.
func (es Events) ForID(id int) Events {
	var out Events
	for _, e := range es {
		if e.ID == id {
			out = append(out, e)
		}
	}
	return out
}

func (es Events) clone() Events {
	out := make(Events, len(es))
	copy(out, es)
	return out
}
