package geom

// Orientation is the winding direction of a polygon ring.
type Orientation int

const (
	// Degenerate marks a ring with zero signed area.
	Degenerate Orientation = iota
	// Clockwise winding, negative shoelace sum.
	Clockwise
	// CounterClockwise winding, positive shoelace sum.
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "degenerate"
	}
}

// Area returns the absolute area of the polygon and its winding
// orientation. A zero shoelace sum reports Degenerate; that is a defined
// outcome for collinear rings, not an error.
func Area(p Polygon) (float64, Orientation) {
	sa := SignedArea(p)
	switch {
	case sa > 0:
		return sa, CounterClockwise
	case sa < 0:
		return -sa, Clockwise
	default:
		return 0, Degenerate
	}
}

// SignedArea computes the shoelace sum over the ring, halved. Positive
// means counter-clockwise winding. The sign is the same cross-product
// convention the clipping engine uses for its inside test.
func SignedArea(p Polygon) float64 {
	return ringArea(p.verts())
}

// ringArea is the shoelace formula over an open vertex ring.
func ringArea(verts []Point) float64 {
	n := len(verts)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += verts[i].X*verts[j].Y - verts[j].X*verts[i].Y
	}
	return sum / 2
}
