// Package reader loads raw recordings from disk into containers. Only
// EDF/EDF+ is supported for now; the decoding of sample data is
// delegated to github.com/OpenPSG/edf.
package reader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/OpenPSG/edf"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/eegstack-labs/eegtab/pkg/eeg"
)

// EDF+ stores its timestamped annotations as a pseudo-signal under this
// label; it carries no amplitude data and is skipped when building
// channel columns.
const annotationsLabel = "EDF Annotations"

// edfHeader is the subset of the EDF header the reader needs up front:
// the decoding library keeps its parsed header private, so the fixed
// 256-byte layout is parsed here as well.
type edfHeader struct {
	recordingID string
	headerBytes int
	records     int
	duration    time.Duration
	labels      []string
	samples     []int
}

// recordSize returns the byte length of one data record.
func (h *edfHeader) recordSize() int {
	size := 0
	for _, n := range h.samples {
		size += 2 * n
	}
	return size
}

// signalOffset returns the byte offset of signal i inside a data record.
func (h *edfHeader) signalOffset(i int) int {
	off := 0
	for j := 0; j < i; j++ {
		off += 2 * h.samples[j]
	}
	return off
}

// EDF reads a single EDF/EDF+ file into a fresh single-segment
// container. Every data signal becomes a recorded channel column; the
// sampling rate is derived from the record duration and must agree
// across signals. Files without a recording id get a generated one.
func EDF(path string) (*eeg.Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	hdr, err := readHeader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	r, err := edf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	durSec := hdr.duration.Seconds()
	if durSec <= 0 {
		return nil, &eeg.SchemaError{Op: "read", Detail: fmt.Sprintf(
			"%s: non-positive data record duration %v", path, hdr.duration)}
	}
	if hdr.records < 0 {
		return nil, &eeg.SchemaError{Op: "read", Detail: path + ": unknown data record count"}
	}

	var (
		names  []string
		idx    []int
		annIdx []int
		rate   eeg.Rate
	)
	for i, label := range hdr.labels {
		if label == annotationsLabel {
			annIdx = append(annIdx, i)
			continue
		}
		sigRate := eeg.Rate(float64(hdr.samples[i]) / durSec)
		if len(idx) == 0 {
			rate = sigRate
		} else if sigRate != rate {
			return nil, &eeg.SchemaError{Op: "read", Detail: fmt.Sprintf(
				"%s: signal %q sampled at %g Hz, want %g Hz", path, label, float64(sigRate), float64(rate))}
		}
		names = append(names, label)
		idx = append(idx, i)
	}
	if len(idx) == 0 {
		return nil, &eeg.SchemaError{Op: "read", Detail: path + ": no data signals"}
	}

	total := hdr.samples[idx[0]] * hdr.records
	columns := make([][]float64, len(idx))
	for c, i := range idx {
		sr, err := r.Signal(i)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		buf := make([]float64, total)
		if _, err := sr.Read(buf); err != nil {
			return nil, fmt.Errorf("reading %s signal %q: %w", path, names[c], err)
		}
		columns[c] = buf
	}

	rows := make([][]float64, total)
	for s := 0; s < total; s++ {
		row := make([]float64, len(columns))
		for c := range columns {
			row[c] = columns[c][s]
		}
		rows[s] = row
	}

	var events []eeg.Event
	for _, i := range annIdx {
		evs, err := readAnnotations(f, hdr, i, rate, total)
		if err != nil {
			return nil, fmt.Errorf("reading %s annotations: %w", path, err)
		}
		events = append(events, evs...)
	}

	recording := hdr.recordingID
	if recording == "" {
		recording = uuid.NewString()
	}
	return eeg.NewContainer(rows, names, rate, events, recording)
}

// readAnnotations decodes the timestamped annotation lists of one EDF+
// annotation signal into events. The timekeeping annotation opening each
// record carries no text and is skipped; annotations entirely outside
// the recorded samples are dropped, partially covered spans are clamped.
func readAnnotations(f io.ReadSeeker, hdr *edfHeader, signal int, rate eeg.Rate, total int) ([]eeg.Event, error) {
	chunk := make([]byte, 2*hdr.samples[signal])
	raw := make([]byte, 0, len(chunk)*hdr.records)
	for r := 0; r < hdr.records; r++ {
		pos := int64(hdr.headerBytes) + int64(r)*int64(hdr.recordSize()) + int64(hdr.signalOffset(signal))
		if _, err := f.Seek(pos, io.SeekStart); err != nil {
			return nil, err
		}
		if _, err := io.ReadFull(f, chunk); err != nil {
			return nil, err
		}
		raw = append(raw, chunk...)
	}

	var events []eeg.Event
	for _, tal := range bytes.Split(raw, []byte{0x00}) {
		if len(tal) == 0 {
			continue
		}
		head, texts, ok := bytes.Cut(tal, []byte{0x14})
		if !ok {
			continue
		}
		onsetStr, durStr, hasDur := strings.Cut(string(head), "\x15")
		onsetSec, err := strconv.ParseFloat(onsetStr, 64)
		if err != nil {
			continue
		}
		size := 1
		if hasDur {
			if d, err := strconv.ParseFloat(durStr, 64); err == nil {
				if n := int(rate.Samples(d)); n > size {
					size = n
				}
			}
		}
		for _, text := range bytes.Split(texts, []byte{0x14}) {
			if len(text) == 0 {
				continue
			}
			onset := rate.Samples(onsetSec) + 1
			end := onset + eeg.Sample(size) - 1
			if end < 1 || onset > eeg.Sample(total) {
				continue
			}
			if onset < 1 {
				onset = 1
			}
			if end > eeg.Sample(total) {
				end = eeg.Sample(total)
			}
			events = append(events, eeg.Event{
				Type:        "annotation",
				Description: string(text),
				Onset:       onset,
				Size:        int(end-onset) + 1,
			})
		}
	}
	return events, nil
}

// EDFAll reads several EDF files concurrently and binds them into one
// container in argument order. All files must share the sampling rate
// and channel layout.
func EDFAll(ctx context.Context, paths ...string) (*eeg.Container, error) {
	if len(paths) == 0 {
		return nil, &eeg.SchemaError{Op: "read", Detail: "no input files"}
	}
	containers := make([]*eeg.Container, len(paths))
	g, _ := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			c, err := EDF(path)
			if err != nil {
				return err
			}
			containers[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return eeg.Bind(containers...)
}

func readHeader(r io.Reader) (*edfHeader, error) {
	b := make([]byte, 256)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	hdr := &edfHeader{recordingID: strings.TrimSpace(string(b[88:168]))}

	var err error
	hdr.headerBytes, err = strconv.Atoi(strings.TrimSpace(string(b[184:192])))
	if err != nil {
		return nil, fmt.Errorf("parsing header byte count: %w", err)
	}
	hdr.records, err = strconv.Atoi(strings.TrimSpace(string(b[236:244])))
	if err != nil {
		return nil, fmt.Errorf("parsing data record count: %w", err)
	}
	hdr.duration, err = time.ParseDuration(strings.TrimSpace(string(b[244:252])) + "s")
	if err != nil {
		return nil, fmt.Errorf("parsing data record duration: %w", err)
	}
	ns, err := strconv.Atoi(strings.TrimSpace(string(b[252:256])))
	if err != nil {
		return nil, fmt.Errorf("parsing signal count: %w", err)
	}

	labels := make([]byte, 16*ns)
	if _, err := io.ReadFull(r, labels); err != nil {
		return nil, fmt.Errorf("reading signal labels: %w", err)
	}
	hdr.labels = make([]string, ns)
	for i := 0; i < ns; i++ {
		hdr.labels[i] = strings.TrimSpace(string(labels[16*i : 16*(i+1)]))
	}

	// Skip transducer type, physical dimension, physical and digital
	// ranges, and prefiltering up to the samples-per-record field.
	if _, err := io.CopyN(io.Discard, r, int64(ns)*(80+8+8+8+8+8+80)); err != nil {
		return nil, fmt.Errorf("reading signal headers: %w", err)
	}

	counts := make([]byte, 8*ns)
	if _, err := io.ReadFull(r, counts); err != nil {
		return nil, fmt.Errorf("reading samples per record: %w", err)
	}
	hdr.samples = make([]int, ns)
	for i := 0; i < ns; i++ {
		hdr.samples[i], err = strconv.Atoi(strings.TrimSpace(string(counts[8*i : 8*(i+1)])))
		if err != nil {
			return nil, fmt.Errorf("parsing samples per record for signal %d: %w", i, err)
		}
	}
	return hdr, nil
}
