package eeg

import (
	"fmt"
	"strings"
)

// SchemaError reports a missing channel or column, or a table-schema
// mismatch between containers.
type SchemaError struct {
	Op      string
	Missing []string
	Detail  string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: schema error", e.Op)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, ": missing %s", strings.Join(e.Missing, ", "))
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	return b.String()
}

// CardinalityError reports a join or summarize that would produce more
// than one row per segment where exactly one is required.
type CardinalityError struct {
	Op  string
	Key string
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%s: cardinality error: key %q matches more than one row", e.Op, e.Key)
}

// BoundsError reports a segment window exceeding the available samples
// under EdgeError policy.
type BoundsError struct {
	Op       string
	ID       int
	From, To Sample
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: window [%d, %d] exceeds samples available in segment %d", e.Op, e.From, e.To, e.ID)
}

// ConsistencyError reports an internal invariant violation between the
// signal, events, and segments tables. Surfacing one indicates a bug in
// the verb layer, not a caller mistake.
type ConsistencyError struct {
	Detail string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("container inconsistency: %s", e.Detail)
}
