package montage

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Projection selects a 3D-to-2D electrode mapping.
type Projection uint8

const (
	// Polar maps the polar angle from the vertex to the radius, so equal
	// scalp distances stay roughly equidistant. The usual choice for
	// topographic maps.
	Polar Projection = iota
	// Orthographic views the head from above, discarding z.
	Orthographic
	// Stereographic projects from the point opposite the vertex onto the
	// equatorial plane.
	Stereographic
)

func (p Projection) String() string {
	switch p {
	case Polar:
		return "polar"
	case Orthographic:
		return "orthographic"
	case Stereographic:
		return "stereographic"
	default:
		return "unknown"
	}
}

// ParseProjection maps a configuration string to a Projection.
func ParseProjection(s string) (Projection, error) {
	switch s {
	case "polar", "":
		return Polar, nil
	case "orthographic":
		return Orthographic, nil
	case "stereographic":
		return Stereographic, nil
	default:
		return 0, fmt.Errorf("unknown projection %q (want polar, orthographic, or stereographic)", s)
	}
}

// Point is a projected 2D electrode position.
type Point struct {
	X float64
	Y float64
}

// Project maps one electrode position to the plane. Positions are
// normalized to the unit sphere first; a degenerate zero vector projects
// to the origin.
func Project(ch Channel, p Projection) Point {
	v := r3.Vec{X: ch.X, Y: ch.Y, Z: ch.Z}
	n := r3.Norm(v)
	if n == 0 {
		return Point{}
	}
	v = r3.Scale(1/n, v)

	switch p {
	case Orthographic:
		return Point{X: v.X, Y: v.Y}
	case Stereographic:
		// Projection pole at z = -1; electrodes below the equator map
		// outside the unit circle.
		return Point{X: v.X / (1 + v.Z), Y: v.Y / (1 + v.Z)}
	default:
		theta := math.Acos(v.Z)
		r := theta / math.Pi
		phi := math.Atan2(v.Y, v.X)
		return Point{X: r * math.Cos(phi), Y: r * math.Sin(phi)}
	}
}

// ProjectAll projects every channel of the layout, keyed by name.
func (l *Layout) ProjectAll(p Projection) map[string]Point {
	out := make(map[string]Point, len(l.Channels))
	for _, ch := range l.Channels {
		out[ch.Name] = Project(ch, p)
	}
	return out
}
