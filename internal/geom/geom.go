// Package geom is a 2D computational-geometry kernel: geometry value
// types, a WKT text codec, convex hull construction, convex polygon
// clipping, and area/orientation computation.
//
// Every operation is a pure function from owned inputs to a freshly
// owned result; nothing in this package performs I/O or holds mutable
// state. File loading lives in internal/load, display in the callers.
package geom

import "math"

// cross returns the z component of (a-o) x (b-o). Positive when o->a->b
// turns counter-clockwise, zero when the three points are collinear.
// The hull turn test, the clip inside test, and the area sign all share
// this one convention.
func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// onSegment reports whether q lies on the closed segment ab.
func onSegment(a, b, q Point) bool {
	if cross(a, b, q) != 0 {
		return false
	}
	return math.Min(a.X, b.X) <= q.X && q.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= q.Y && q.Y <= math.Max(a.Y, b.Y)
}
