// Package eeg provides the core EEG container: a wide-format signal table,
// an events table, and a segments table kept mutually consistent by a set
// of transformation verbs (filter, mutate, summarize, segment, joins, bind,
// baseline correction, re-referencing).
//
// Containers are value types: every verb returns a new container and never
// mutates its receiver. The three tables share a dense segment identifier
// (1..N); verbs that drop segments renumber it unless documented otherwise.
package eeg
