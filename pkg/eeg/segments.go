package eeg

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Built-in segment-table column names usable in grouping and joins.
const (
	ColRecording = "recording"
	ColSegment   = "segment"
	// ColSample is the pseudo-column enabling per-sample grouping.
	ColSample = ".sample"
)

// SegmentInfo is one row of the segments table: recording identity, a
// segment index, and free-form user annotations.
type SegmentInfo struct {
	ID        int
	Recording string
	Segment   int
	Extra     map[string]Value
}

func (si SegmentInfo) cloneRow() SegmentInfo {
	out := si
	out.Extra = make(map[string]Value, len(si.Extra))
	for k, v := range si.Extra {
		out.Extra[k] = v
	}
	return out
}

// Segments is the segment-metadata table: exactly one row per segment id.
// ExtraNames fixes a deterministic order for the free-form columns.
type Segments struct {
	Rows       []SegmentInfo
	ExtraNames []string
}

// Row returns the row for a segment id.
func (s *Segments) Row(id int) (SegmentInfo, bool) {
	for _, r := range s.Rows {
		if r.ID == id {
			return r, true
		}
	}
	return SegmentInfo{}, false
}

func (s *Segments) clone() Segments {
	out := Segments{
		Rows:       make([]SegmentInfo, len(s.Rows)),
		ExtraNames: append([]string(nil), s.ExtraNames...),
	}
	for i := range s.Rows {
		out.Rows[i] = s.Rows[i].cloneRow()
	}
	return out
}

func (s *Segments) hasExtra(name string) bool {
	for _, n := range s.ExtraNames {
		if n == name {
			return true
		}
	}
	return false
}

func (s *Segments) addExtraName(name string) {
	if !s.hasExtra(name) {
		s.ExtraNames = append(s.ExtraNames, name)
	}
}

// columnValue resolves a built-in or extra column on one row.
func (s *Segments) columnValue(row SegmentInfo, name string) (Value, bool) {
	switch name {
	case ColRecording:
		return Str(row.Recording), true
	case ColSegment:
		return Num(float64(row.Segment)), true
	}
	if v, ok := row.Extra[name]; ok {
		return v, true
	}
	if s.hasExtra(name) {
		return NA(), true
	}
	return Value{}, false
}

// Decode unmarshals all segment rows into out, which must be a pointer to
// a slice of structs. Column names map to struct fields via mapstructure
// tags; NA values decode to the field's zero value.
func (s *Segments) Decode(out any) error {
	rows := make([]map[string]any, len(s.Rows))
	for i, r := range s.Rows {
		m := map[string]any{
			ColRecording: r.Recording,
			ColSegment:   r.Segment,
			"id":         r.ID,
		}
		for _, name := range s.ExtraNames {
			if v, ok := r.Extra[name]; ok && !v.IsNA() {
				m[name] = v.anyValue()
			}
		}
		rows[i] = m
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("building segments decoder: %w", err)
	}
	if err := dec.Decode(rows); err != nil {
		return fmt.Errorf("decoding segments: %w", err)
	}
	return nil
}
