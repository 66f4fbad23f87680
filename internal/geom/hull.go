package geom

import (
	"fmt"
	"sort"
)

// ConvexHull computes the convex hull of points with the monotone chain
// algorithm. The result is wound counter-clockwise starting from the
// lexicographically smallest vertex, with no collinear vertices retained.
// Fewer than 3 distinct points, or all points collinear, fail with
// ErrInvalidGeometry; the output is deterministic for any permutation of
// the input.
func ConvexHull(points []Point) (Polygon, error) {
	for _, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return Polygon{}, fmt.Errorf("%w: non-finite coordinate (%v %v)", ErrInvalidGeometry, p.X, p.Y)
		}
	}
	pts := dedupSorted(points)
	if len(pts) < 3 {
		Logger().Debug("degenerate hull input", "points", len(points), "distinct", len(pts))
		return Polygon{}, fmt.Errorf("%w: hull needs at least 3 distinct points, got %d", ErrInvalidGeometry, len(pts))
	}

	// lower chain left to right, upper chain right to left; a cross
	// product <= 0 pops the middle point, so collinear points never stay
	lower := make([]Point, 0, len(pts))
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	upper := make([]Point, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// drop the shared chain endpoints when joining
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		Logger().Debug("collinear hull input", "distinct", len(pts))
		return Polygon{}, fmt.Errorf("%w: all points collinear", ErrInvalidGeometry)
	}
	return NewPolygon(hull)
}

// dedupSorted returns the distinct input points sorted by (x, then y)
// ascending. The input slice is left untouched.
func dedupSorted(points []Point) []Point {
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	out := make([]Point, 0, len(pts))
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			out = append(out, p)
		}
	}
	return out
}
