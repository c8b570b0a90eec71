package eeg

import (
	"fmt"
	"math"
)

// ValueKind discriminates the variants of a metadata Value.
type ValueKind uint8

const (
	// KindNA marks a missing value.
	KindNA ValueKind = iota
	// KindString marks a free-text value (condition labels etc).
	KindString
	// KindNumeric marks a numeric covariate.
	KindNumeric
)

// Value is a tagged scalar used for segment-metadata columns and covariate
// tables. The zero Value is NA.
type Value struct {
	kind ValueKind
	str  string
	num  float64
}

// NA returns the missing value.
func NA() Value { return Value{} }

// Str returns a string value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Num returns a numeric value. NaN is normalized to NA.
func Num(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	return Value{kind: KindNumeric, num: f}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsNA reports whether the value is missing.
func (v Value) IsNA() bool { return v.kind == KindNA }

// Text returns the string payload; ok is false unless the value is a string.
func (v Value) Text() (string, bool) { return v.str, v.kind == KindString }

// Float returns the numeric payload; ok is false unless the value is numeric.
func (v Value) Float() (float64, bool) { return v.num, v.kind == KindNumeric }

// Equal reports exact equality of kind and payload.
func (v Value) Equal(o Value) bool { return v == o }

// String formats the value for display and for join-key construction.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumeric:
		return fmt.Sprintf("%g", v.num)
	default:
		return "NA"
	}
}

// anyValue returns the payload as a plain Go value (nil for NA). Used when
// decoding segment rows into user structs.
func (v Value) anyValue() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumeric:
		return v.num
	default:
		return nil
	}
}
