package eeg

import "fmt"

// Bind concatenates the tables of two or more containers. Channel schemas
// (names, kinds, order) and sampling rates must match exactly; otherwise
// Bind fails with a SchemaError. Incoming segment ids are offset past the
// running maximum so input order is preserved; beyond that offsetting,
// Bind is non-renumbering. Annotation columns are unioned, filling NA
// where a container lacks one. No event alignment or resampling occurs.
func Bind(cs ...*Container) (*Container, error) {
	if len(cs) == 0 {
		return nil, &SchemaError{Op: "bind", Detail: "no containers given"}
	}
	first := cs[0]
	for i, c := range cs[1:] {
		if c.Rate != first.Rate {
			return nil, &SchemaError{Op: "bind", Detail: fmt.Sprintf(
				"sampling rate mismatch: container %d has %g Hz, expected %g Hz", i+1, float64(c.Rate), float64(first.Rate))}
		}
		if !first.Signal.sameSchema(&c.Signal) {
			return nil, &SchemaError{Op: "bind", Detail: fmt.Sprintf("channel set of container %d does not match", i+1)}
		}
	}

	out := first.shallow()
	out.Signal = first.Signal.emptyLike()
	out.Events = nil
	out.Segments = Segments{}
	for _, c := range cs {
		for _, name := range c.Segments.ExtraNames {
			out.Segments.addExtraName(name)
		}
	}

	offset := 0
	for _, c := range cs {
		for i := range c.Signal.IDs {
			out.Signal.appendRow(c.Signal.IDs[i]+offset, c.Signal.Samples[i], c.Signal.row(i))
		}
		for _, ev := range c.Events {
			ev.ID += offset
			out.Events = append(out.Events, ev)
		}
		for _, row := range c.Segments.Rows {
			row = row.cloneRow()
			row.ID += offset
			for _, name := range out.Segments.ExtraNames {
				if _, ok := row.Extra[name]; !ok {
					row.Extra[name] = NA()
				}
			}
			out.Segments.Rows = append(out.Segments.Rows, row)
		}
		offset += len(c.Segments.Rows)
	}
	return out, nil
}
