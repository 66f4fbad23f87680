package geom

import (
	"fmt"
	"math"
)

// Geometry is the closed set of geometry kinds the text codec understands.
// The algorithm engines never take the union; they operate on the concrete
// types, and callers switch over the union only at the codec boundary.
type Geometry interface {
	// WKT returns the textual form of the geometry.
	WKT() string
	// Bounds returns the axis-aligned bounding box.
	Bounds() BBox

	isGeometry()
}

// Point is a single 2D position. Equality is exact coordinate equality.
type Point struct {
	X float64
	Y float64
}

// NewPoint builds a Point, rejecting non-finite coordinates.
func NewPoint(x, y float64) (Point, error) {
	if !finite(x) || !finite(y) {
		return Point{}, fmt.Errorf("%w: non-finite coordinate (%v %v)", ErrInvalidGeometry, x, y)
	}
	return Point{X: x, Y: y}, nil
}

// DistanceTo returns the Euclidean distance to q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Bounds returns the degenerate box covering only the point itself.
func (p Point) Bounds() BBox {
	return BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

func (p Point) isGeometry() {}

// MultiPoint is an ordered collection of points. Order and duplicates are
// preserved for serialization round trips; the hull engine treats the
// collection as a set.
type MultiPoint struct {
	Points []Point
}

// NewMultiPoint builds a MultiPoint from pts, rejecting empty input and
// non-finite coordinates. The input slice is copied.
func NewMultiPoint(pts []Point) (MultiPoint, error) {
	if len(pts) == 0 {
		return MultiPoint{}, fmt.Errorf("%w: empty multipoint", ErrInvalidGeometry)
	}
	for _, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			return MultiPoint{}, fmt.Errorf("%w: non-finite coordinate (%v %v)", ErrInvalidGeometry, p.X, p.Y)
		}
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return MultiPoint{Points: cp}, nil
}

// Equal reports element-wise equality with other.
func (mp MultiPoint) Equal(other MultiPoint) bool {
	if len(mp.Points) != len(other.Points) {
		return false
	}
	for i := range mp.Points {
		if mp.Points[i] != other.Points[i] {
			return false
		}
	}
	return true
}

func (mp MultiPoint) Bounds() BBox { return boundsOf(mp.Points) }

func (mp MultiPoint) isGeometry() {}

// Polygon is a single closed ring. The stored ring is explicitly closed,
// first and last vertices equal. Values are immutable after construction.
type Polygon struct {
	ring []Point
}

// NewPolygon builds a Polygon from verts, given either open or explicitly
// closed (first == last); an open sequence is closed automatically. It
// rejects rings with fewer than 3 distinct vertices, consecutive duplicate
// vertices, and non-finite coordinates. Winding order is not validated
// here; the area engine reports it and the clipping engine checks it.
func NewPolygon(verts []Point) (Polygon, error) {
	open := verts
	if len(open) >= 2 && open[0] == open[len(open)-1] {
		open = open[:len(open)-1]
	}
	if len(open) < 3 {
		return Polygon{}, fmt.Errorf("%w: ring needs at least 3 distinct vertices, got %d", ErrInvalidGeometry, len(open))
	}
	distinct := make(map[Point]struct{}, len(open))
	for i, p := range open {
		if !finite(p.X) || !finite(p.Y) {
			return Polygon{}, fmt.Errorf("%w: non-finite coordinate (%v %v)", ErrInvalidGeometry, p.X, p.Y)
		}
		// the modulo pair also catches a trailing vertex that repeats the
		// first one after closure stripping
		if p == open[(i+1)%len(open)] {
			return Polygon{}, fmt.Errorf("%w: consecutive duplicate vertex (%v %v)", ErrInvalidGeometry, p.X, p.Y)
		}
		distinct[p] = struct{}{}
	}
	if len(distinct) < 3 {
		return Polygon{}, fmt.Errorf("%w: ring needs at least 3 distinct vertices, got %d", ErrInvalidGeometry, len(distinct))
	}
	ring := make([]Point, len(open)+1)
	copy(ring, open)
	ring[len(open)] = open[0]
	return Polygon{ring: ring}, nil
}

// Ring returns a copy of the closed ring, first vertex repeated at the end.
func (pg Polygon) Ring() []Point {
	out := make([]Point, len(pg.ring))
	copy(out, pg.ring)
	return out
}

// NumVertices returns the number of ring vertices, not counting the
// closing repeat.
func (pg Polygon) NumVertices() int {
	if len(pg.ring) == 0 {
		return 0
	}
	return len(pg.ring) - 1
}

// Edge returns the directed ring edge from vertex i to vertex i+1. Like a
// slice index, i must be in [0, NumVertices()).
func (pg Polygon) Edge(i int) (Point, Point) {
	return pg.ring[i], pg.ring[i+1]
}

// verts returns the open ring without the closing vertex. The slice
// shares storage with the polygon and must not be mutated.
func (pg Polygon) verts() []Point {
	if len(pg.ring) == 0 {
		return nil
	}
	return pg.ring[:len(pg.ring)-1]
}

// Equal reports exact vertex-wise equality with other, including winding
// and starting vertex.
func (pg Polygon) Equal(other Polygon) bool {
	if len(pg.ring) != len(other.ring) {
		return false
	}
	for i := range pg.ring {
		if pg.ring[i] != other.ring[i] {
			return false
		}
	}
	return true
}

// IsConvex reports whether every turn around the ring has the same
// direction. Collinear edges do not break convexity.
func (pg Polygon) IsConvex() bool {
	v := pg.verts()
	n := len(v)
	var ccw, cw bool
	for i := 0; i < n; i++ {
		c := cross(v[i], v[(i+1)%n], v[(i+2)%n])
		if c > 0 {
			ccw = true
		} else if c < 0 {
			cw = true
		}
		if ccw && cw {
			return false
		}
	}
	return true
}

// Contains reports whether q lies inside the polygon or on its boundary.
func (pg Polygon) Contains(q Point) bool {
	inside := false
	for i := 0; i < pg.NumVertices(); i++ {
		a, b := pg.Edge(i)
		if onSegment(a, b, q) {
			return true
		}
		if (a.Y > q.Y) != (b.Y > q.Y) {
			xi := a.X + (q.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if q.X < xi {
				inside = !inside
			}
		}
	}
	return inside
}

// Reverse returns a copy of the polygon wound in the opposite direction,
// starting from the same vertex.
func (pg Polygon) Reverse() Polygon {
	v := pg.verts()
	n := len(v)
	rev := make([]Point, n+1)
	rev[0] = v[0]
	for i := 1; i < n; i++ {
		rev[i] = v[n-i]
	}
	rev[n] = rev[0]
	return Polygon{ring: rev}
}

func (pg Polygon) Bounds() BBox { return boundsOf(pg.verts()) }

func (pg Polygon) isGeometry() {}

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extend grows the box to cover (x, y).
func (b BBox) Extend(x, y float64) BBox {
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
	return b
}

// Union returns the box covering both b and o.
func (b BBox) Union(o BBox) BBox {
	return b.Extend(o.MinX, o.MinY).Extend(o.MaxX, o.MaxY)
}

func boundsOf(pts []Point) BBox {
	if len(pts) == 0 {
		return BBox{}
	}
	b := BBox{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b = b.Extend(p.X, p.Y)
	}
	return b
}
