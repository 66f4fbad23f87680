package geom

import "fmt"

// IntersectConvex computes the intersection of two convex polygons with
// Sutherland-Hodgman clipping. Both polygons must be convex and wound
// counter-clockwise; a violation fails with ErrNonConvexInput. When the
// regions do not overlap, or touch only at a point or an edge, the second
// return is false; an empty intersection is a defined outcome, not an
// error.
func IntersectConvex(subject, clip Polygon) (Polygon, bool, error) {
	if err := requireConvexCCW("subject", subject); err != nil {
		return Polygon{}, false, err
	}
	if err := requireConvexCCW("clip", clip); err != nil {
		return Polygon{}, false, err
	}

	work := subject.verts()
	cv := clip.verts()
	for i := 0; i < len(cv) && len(work) > 0; i++ {
		work = clipAgainstEdge(work, cv[i], cv[(i+1)%len(cv)])
	}

	work = dedupRing(work)
	if len(work) < 3 {
		Logger().Debug("empty intersection", "vertices", len(work))
		return Polygon{}, false, nil
	}
	if ringArea(work) == 0 {
		Logger().Debug("zero-area intersection", "vertices", len(work))
		return Polygon{}, false, nil
	}
	out, err := NewPolygon(work)
	if err != nil {
		return Polygon{}, false, err
	}
	return out, true, nil
}

func requireConvexCCW(name string, p Polygon) error {
	if !p.IsConvex() {
		return fmt.Errorf("%w: %s polygon is not convex", ErrNonConvexInput, name)
	}
	if SignedArea(p) <= 0 {
		return fmt.Errorf("%w: %s polygon is not wound counter-clockwise", ErrNonConvexInput, name)
	}
	return nil
}

// clipAgainstEdge keeps the part of the ring on the inside half-plane of
// the directed edge a->b. For a counter-clockwise clip polygon the inside
// is the left side, cross >= 0, so points exactly on the edge line stay.
// Crossing pairs insert the line intersection point.
func clipAgainstEdge(ring []Point, a, b Point) []Point {
	out := make([]Point, 0, len(ring)+1)
	for i := 0; i < len(ring); i++ {
		cur := ring[i]
		next := ring[(i+1)%len(ring)]
		curIn := cross(a, b, cur) >= 0
		nextIn := cross(a, b, next) >= 0
		switch {
		case curIn && nextIn:
			out = append(out, next)
		case curIn && !nextIn:
			if ip, ok := lineIntersection(cur, next, a, b); ok {
				out = append(out, ip)
			}
		case !curIn && nextIn:
			if ip, ok := lineIntersection(cur, next, a, b); ok {
				out = append(out, ip)
			}
			out = append(out, next)
		}
	}
	return out
}

// lineIntersection returns the point where the infinite lines through
// p1->p2 and p3->p4 cross. ok is false for parallel lines; the clipping
// loop only calls this for segments that straddle the edge line, where
// the denominator cannot vanish.
func lineIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	d1x, d1y := p2.X-p1.X, p2.Y-p1.Y
	d2x, d2y := p4.X-p3.X, p4.Y-p3.Y
	denom := d1x*d2y - d1y*d2x
	if denom == 0 {
		return Point{}, false
	}
	t := ((p3.X-p1.X)*d2y - (p3.Y-p1.Y)*d2x) / denom
	return Point{X: p1.X + t*d1x, Y: p1.Y + t*d1y}, true
}

// dedupRing removes consecutive equal vertices, treating the sequence as
// cyclic: trailing vertices equal to the first are dropped as well.
func dedupRing(ring []Point) []Point {
	if len(ring) == 0 {
		return ring
	}
	out := make([]Point, 0, len(ring))
	for i, p := range ring {
		if i == 0 || p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}
