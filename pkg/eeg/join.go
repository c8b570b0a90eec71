package eeg

import "strings"

// Table is an external covariate table joined onto the segments table.
// Rows map column names to values; Columns fixes the column order of the
// appended metadata.
type Table struct {
	Columns []string
	Rows    []map[string]Value
}

const joinKeySep = "\x1f"

// LeftJoin appends the table's non-key columns to the segments table,
// matching on keys. Every segment must match at most one table row;
// a duplicate key in the table fails with a CardinalityError. Unmatched
// segments receive NA values. Signal and events tables are untouched.
func (c *Container) LeftJoin(t Table, keys ...string) (*Container, error) {
	return c.join("left_join", t, keys, false)
}

// InnerJoin behaves like LeftJoin but drops unmatched segments from all
// three tables and renumbers the segment ids densely.
func (c *Container) InnerJoin(t Table, keys ...string) (*Container, error) {
	return c.join("inner_join", t, keys, true)
}

func (c *Container) join(op string, t Table, keys []string, drop bool) (*Container, error) {
	if len(keys) == 0 {
		return nil, &SchemaError{Op: op, Detail: "at least one join key is required"}
	}

	tableCols := make(map[string]bool, len(t.Columns))
	for _, col := range t.Columns {
		tableCols[col] = true
	}
	isKey := make(map[string]bool, len(keys))
	var missing []string
	for _, key := range keys {
		isKey[key] = true
		if !tableCols[key] {
			missing = append(missing, key)
			continue
		}
		if key != ColRecording && key != ColSegment && !c.Segments.hasExtra(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Op: op, Missing: missing}
	}

	var appended []string
	for _, col := range t.Columns {
		if isKey[col] {
			continue
		}
		if c.Segments.hasExtra(col) || col == ColRecording || col == ColSegment {
			return nil, &SchemaError{Op: op, Detail: "column " + col + " already exists in segments table"}
		}
		appended = append(appended, col)
	}

	// Index the incoming table; a duplicate key is a cardinality error.
	index := make(map[string]map[string]Value, len(t.Rows))
	for _, row := range t.Rows {
		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = row[key].String()
		}
		k := strings.Join(parts, joinKeySep)
		if _, dup := index[k]; dup {
			return nil, &CardinalityError{Op: op, Key: strings.Join(parts, ", ")}
		}
		index[k] = row
	}

	out := c.shallow()
	segs := c.Segments.clone()
	for _, col := range appended {
		segs.addExtraName(col)
	}

	keepID := make(map[int]bool, len(segs.Rows))
	for i := range segs.Rows {
		parts := make([]string, len(keys))
		for j, key := range keys {
			v, _ := segs.columnValue(segs.Rows[i], key)
			parts[j] = v.String()
		}
		match, ok := index[strings.Join(parts, joinKeySep)]
		if ok {
			for _, col := range appended {
				segs.Rows[i].Extra[col] = match[col]
			}
			keepID[segs.Rows[i].ID] = true
		} else if !drop {
			for _, col := range appended {
				segs.Rows[i].Extra[col] = NA()
			}
			keepID[segs.Rows[i].ID] = true
		}
	}
	out.Segments = segs

	if len(keepID) != len(segs.Rows) {
		out.renumberKept(keepID)
	}
	return out, nil
}
