// Package ica defines the interface to external independent-component
// solvers and applies their results to a container. The numerical
// decomposition itself is delegated to the solver implementation; this
// package only moves data between containers and matrices.
package ica

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/eegstack-labs/eegtab/pkg/eeg"
)

// Result is the output of a fitted decomposition: component weights for
// reconstructing sources from channels and channels from sources.
type Result struct {
	// Mixing maps components back to channels (channels x components).
	Mixing *mat.Dense
	// Unmixing maps channels to components (components x channels).
	Unmixing *mat.Dense
}

// Solver fits a decomposition to channel-major data (channels x samples).
// Implementations supply the numerics (FastICA, Infomax, ...).
type Solver interface {
	Fit(data mat.Matrix) (*Result, error)
}

// Matrix extracts the selected channels of the container as a
// channel-major matrix suitable for Solver.Fit. Channels appear in
// selection order.
func Matrix(c *eeg.Container, sel eeg.ChannelSelector) (*mat.Dense, []string, error) {
	idx, err := sel.Resolve("ica", &c.Signal)
	if err != nil {
		return nil, nil, err
	}
	if len(idx) == 0 {
		return nil, nil, &eeg.SchemaError{Op: "ica", Detail: "empty channel selection"}
	}
	names := make([]string, len(idx))
	data := mat.NewDense(len(idx), c.Signal.Len(), nil)
	for r, ch := range idx {
		names[r] = c.Signal.Channels[ch].Name
		data.SetRow(r, c.Signal.Channels[ch].Data)
	}
	return data, names, nil
}

// Apply derives component channels by applying an unmixing matrix
// (components x channels) to the selected recorded channels. The
// resulting columns are appended with kind Component under the given
// names; names must supply one entry per unmixing row.
func Apply(c *eeg.Container, unmixing mat.Matrix, sel eeg.ChannelSelector, names []string) (*eeg.Container, error) {
	data, _, err := Matrix(c, sel)
	if err != nil {
		return nil, err
	}
	rows, cols := unmixing.Dims()
	nch, nsamples := data.Dims()
	if cols != nch {
		return nil, &eeg.SchemaError{Op: "ica", Detail: fmt.Sprintf(
			"unmixing matrix has %d columns for %d selected channels", cols, nch)}
	}
	if len(names) != rows {
		return nil, &eeg.SchemaError{Op: "ica", Detail: fmt.Sprintf(
			"%d component names for %d unmixing rows", len(names), rows)}
	}
	for _, name := range names {
		if _, exists := c.Signal.Channel(name); exists {
			return nil, &eeg.SchemaError{Op: "ica", Detail: "channel " + name + " already exists"}
		}
	}

	var sources mat.Dense
	sources.Mul(unmixing, data)

	out := *c
	outSig := c.Signal
	channels := make([]eeg.ChannelColumn, len(outSig.Channels), len(outSig.Channels)+rows)
	copy(channels, outSig.Channels)
	for r := 0; r < rows; r++ {
		col := make([]float64, nsamples)
		copy(col, sources.RawRowView(r))
		channels = append(channels, eeg.ChannelColumn{Name: names[r], Kind: eeg.Component, Data: col})
	}
	outSig.Channels = channels
	out.Signal = outSig
	return &out, nil
}
