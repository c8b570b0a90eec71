package eeg

// GroupBy returns a container carrying cols as its group key. Columns are
// drawn from the segments table (built-in or annotation columns) or the
// pseudo-column ".sample" for per-sample grouping. Grouping is metadata
// consumed by Summarize; it does not partition storage and is carried
// through other verbs until Ungroup clears it.
func (c *Container) GroupBy(cols ...string) (*Container, error) {
	var missing []string
	for _, col := range cols {
		if col == ColSample || col == ColRecording || col == ColSegment || c.Segments.hasExtra(col) {
			continue
		}
		missing = append(missing, col)
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Op: "group_by", Missing: missing}
	}
	out := c.shallow()
	out.groups = append([]string(nil), cols...)
	return out, nil
}

// Ungroup clears the group key without altering data.
func (c *Container) Ungroup() *Container {
	out := c.shallow()
	out.groups = nil
	return out
}
