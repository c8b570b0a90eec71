package reader

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/OpenPSG/edf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eegstack-labs/eegtab/pkg/eeg"
)

// testSignal uses an identity digital-to-physical mapping so integer
// sample values survive the round trip exactly.
func testSignal(label string, samplesPerRecord int) edf.SignalHeader {
	return edf.SignalHeader{
		Label:             label,
		PhysicalDimension: "uV",
		PhysicalMin:       -32768,
		PhysicalMax:       32767,
		DigitalMin:        -32768,
		DigitalMax:        32767,
		SamplesPerRecord:  samplesPerRecord,
	}
}

func writeTestEDF(t *testing.T, name, recordingID string, signals []edf.SignalHeader, records [][][]float64) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	require.NoError(t, err)
	defer f.Close()

	hdr := edf.Header{
		Version:            edf.Version0,
		PatientID:          "anonymous",
		RecordingID:        recordingID,
		StartTime:          time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		DataRecordDuration: time.Second,
		SignalCount:        len(signals),
		Signals:            signals,
	}
	ew, err := edf.Create(f, hdr)
	require.NoError(t, err)
	for _, record := range records {
		require.NoError(t, ew.WriteRecord(record))
	}
	require.NoError(t, ew.Close())
	return path
}

func TestEDF(t *testing.T) {
	path := writeTestEDF(t, "a.edf", "rec-A",
		[]edf.SignalHeader{testSignal("Fz", 4), testSignal("Cz", 4)},
		[][][]float64{
			{{1, 2, 3, 4}, {-1, -2, -3, -4}},
			{{5, 6, 7, 8}, {-5, -6, -7, -8}},
		})

	c, err := EDF(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, eeg.Rate(4), c.Rate)
	assert.Equal(t, []string{"Fz", "Cz"}, c.Signal.ChannelNames())

	i, ok := c.Signal.Channel("Fz")
	require.True(t, ok)
	assert.Equal(t, eeg.Recorded, c.Signal.Channels[i].Kind)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, c.Signal.Channels[i].Data)

	j, ok := c.Signal.Channel("Cz")
	require.True(t, ok)
	assert.Equal(t, []float64{-1, -2, -3, -4, -5, -6, -7, -8}, c.Signal.Channels[j].Data)

	require.Len(t, c.Segments.Rows, 1)
	assert.Equal(t, "rec-A", c.Segments.Rows[0].Recording)
	assert.Equal(t, eeg.Sample(1), c.Signal.Samples[0])
	assert.Equal(t, eeg.Sample(8), c.Signal.Samples[7])
}

func TestEDF_GeneratedRecordingID(t *testing.T) {
	path := writeTestEDF(t, "anon.edf", "",
		[]edf.SignalHeader{testSignal("Fz", 2)},
		[][][]float64{{{1, 2}}})

	c, err := EDF(path)
	require.NoError(t, err)
	require.Len(t, c.Segments.Rows, 1)
	assert.NotEmpty(t, c.Segments.Rows[0].Recording)
}

func TestEDF_MixedRates(t *testing.T) {
	path := writeTestEDF(t, "mixed.edf", "rec-A",
		[]edf.SignalHeader{testSignal("Fz", 4), testSignal("EMG", 2)},
		[][][]float64{{{1, 2, 3, 4}, {1, 2}}})

	_, err := EDF(path)
	var schemaErr *eeg.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, err.Error(), "EMG")
}

func TestEDF_SkipsAnnotations(t *testing.T) {
	path := writeTestEDF(t, "annotated.edf", "rec-A",
		[]edf.SignalHeader{testSignal("Fz", 4), testSignal("EDF Annotations", 8)},
		[][][]float64{{{1, 2, 3, 4}, {0, 0, 0, 0, 0, 0, 0, 0}}})

	c, err := EDF(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fz"}, c.Signal.ChannelNames())
	assert.Equal(t, eeg.Rate(4), c.Rate)
}

// talRecord packs a timestamped-annotation list into the int16 sample
// stream of an annotation signal, exploiting the identity digital range.
func talRecord(t *testing.T, samplesPerRecord int, tal string) []float64 {
	t.Helper()
	raw := []byte(tal)
	require.LessOrEqual(t, len(raw), 2*samplesPerRecord)
	buf := make([]byte, 2*samplesPerRecord)
	copy(buf, raw)
	out := make([]float64, samplesPerRecord)
	for i := range out {
		out[i] = float64(int16(binary.LittleEndian.Uint16(buf[2*i:])))
	}
	return out
}

func TestEDF_DecodesAnnotations(t *testing.T) {
	tal := "+0\x14\x14\x00" + "+0.5\x150.25\x14stim\x14\x00"
	path := writeTestEDF(t, "annotated.edf", "rec-A",
		[]edf.SignalHeader{testSignal("Fz", 4), testSignal("EDF Annotations", 12)},
		[][][]float64{{{1, 2, 3, 4}, talRecord(t, 12, tal)}})

	c, err := EDF(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	require.Len(t, c.Events, 1)
	ev := c.Events[0]
	assert.Equal(t, "annotation", ev.Type)
	assert.Equal(t, "stim", ev.Description)
	// 0.5 s at 4 Hz, samples starting at 1.
	assert.Equal(t, eeg.Sample(3), ev.Onset)
	assert.Equal(t, 1, ev.Size)
}

func TestEDF_DropsOutOfRangeAnnotations(t *testing.T) {
	tal := "+0\x14\x14\x00" + "+30\x14late\x14\x00"
	path := writeTestEDF(t, "late.edf", "rec-A",
		[]edf.SignalHeader{testSignal("Fz", 4), testSignal("EDF Annotations", 12)},
		[][][]float64{{{1, 2, 3, 4}, talRecord(t, 12, tal)}})

	c, err := EDF(path)
	require.NoError(t, err)
	assert.Empty(t, c.Events)
}

func TestEDFAll(t *testing.T) {
	a := writeTestEDF(t, "a.edf", "rec-A",
		[]edf.SignalHeader{testSignal("Fz", 2)},
		[][][]float64{{{1, 2}}})
	b := writeTestEDF(t, "b.edf", "rec-B",
		[]edf.SignalHeader{testSignal("Fz", 2)},
		[][][]float64{{{3, 4}}})

	c, err := EDFAll(context.Background(), a, b)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	require.Len(t, c.Segments.Rows, 2)
	assert.Equal(t, "rec-A", c.Segments.Rows[0].Recording)
	assert.Equal(t, "rec-B", c.Segments.Rows[1].Recording)
	assert.Equal(t, []int{1, 1, 2, 2}, c.Signal.IDs)

	i, ok := c.Signal.Channel("Fz")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3, 4}, c.Signal.Channels[i].Data)
}

func TestEDFAll_NoInputs(t *testing.T) {
	_, err := EDFAll(context.Background())
	var schemaErr *eeg.SchemaError
	require.ErrorAs(t, err, &schemaErr)
}
