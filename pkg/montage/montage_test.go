package montage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const layoutYAML = `
name: test-10-20
channels:
  - {name: Cz, x: 0, y: 0, z: 1}
  - {name: T8, x: 1, y: 0, z: 0}
  - {name: Fpz, x: 0, y: 1, z: 0}
`

func TestParse(t *testing.T) {
	l, err := Parse([]byte(layoutYAML))
	require.NoError(t, err)
	assert.Equal(t, "test-10-20", l.Name)
	assert.Equal(t, []string{"Cz", "T8", "Fpz"}, l.Names())

	ch, ok := l.Get("T8")
	require.True(t, ok)
	assert.Equal(t, 1.0, ch.X)

	_, ok = l.Get("Oz")
	assert.False(t, ok)
	assert.Equal(t, []string{"Oz"}, l.Missing([]string{"Cz", "Oz"}))
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("name: empty\nchannels: []\n"))
	require.Error(t, err)

	dup := "channels:\n  - {name: Cz}\n  - {name: Cz}\n"
	_, err = Parse([]byte(dup))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate channel")
}

func TestProject(t *testing.T) {
	vertex := Channel{Name: "Cz", Z: 1}
	ear := Channel{Name: "T8", X: 1}
	front := Channel{Name: "Fpz", Y: 1}

	tests := []struct {
		name string
		proj Projection
		ch   Channel
		want Point
	}{
		{"polar vertex at origin", Polar, vertex, Point{0, 0}},
		{"polar ear on half radius", Polar, ear, Point{0.5, 0}},
		{"polar front on half radius", Polar, front, Point{0, 0.5}},
		{"orthographic vertex", Orthographic, vertex, Point{0, 0}},
		{"orthographic ear", Orthographic, ear, Point{1, 0}},
		{"stereographic vertex", Stereographic, vertex, Point{0, 0}},
		{"stereographic ear", Stereographic, ear, Point{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.ch, tt.proj)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
		})
	}
}

func TestProject_NormalizesRadius(t *testing.T) {
	// Same direction, different magnitude: identical projection.
	a := Project(Channel{X: 1, Y: 1, Z: 1}, Polar)
	b := Project(Channel{X: 10, Y: 10, Z: 10}, Polar)
	assert.InDelta(t, a.X, b.X, 1e-12)
	assert.InDelta(t, a.Y, b.Y, 1e-12)
}

func TestProjectAll(t *testing.T) {
	l, err := Parse([]byte(layoutYAML))
	require.NoError(t, err)
	pts := l.ProjectAll(Polar)
	require.Len(t, pts, 3)
	assert.InDelta(t, 0.5, pts["T8"].X, 1e-12)
}

func TestParseProjection(t *testing.T) {
	p, err := ParseProjection("")
	require.NoError(t, err)
	assert.Equal(t, Polar, p)

	_, err = ParseProjection("mercator")
	require.Error(t, err)
}

func TestProject_DegenerateOrigin(t *testing.T) {
	got := Project(Channel{}, Polar)
	assert.False(t, math.IsNaN(got.X))
	assert.Equal(t, Point{}, got)
}
