package eeg

import "math"

// Sample is a signed sample offset within a segment. After segmentation,
// offset 0 denotes the anchor event; negative offsets are pre-stimulus.
type Sample int

// Rate is a sampling rate in Hz. A container carries a single rate shared
// by all segments.
type Rate float64

// Valid reports whether the rate is a positive finite number.
func (r Rate) Valid() bool {
	f := float64(r)
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Seconds converts a sample offset to physical time in seconds.
func (r Rate) Seconds(s Sample) float64 {
	return float64(s) / float64(r)
}

// Samples converts physical time in seconds to the nearest sample offset,
// rounding halves away from zero. The conversion is exact for integer
// rates; for non-integer rates the same rounding mode applies to the
// scaled value.
func (r Rate) Samples(sec float64) Sample {
	v := sec * float64(r)
	if v >= 0 {
		return Sample(math.Floor(v + 0.5))
	}
	return Sample(math.Ceil(v - 0.5))
}
