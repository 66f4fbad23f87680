package geom

import "errors"

// Sentinel errors reported by constructors and engines. They are wrapped
// with a reason via fmt.Errorf and %w; match them with errors.Is.
var (
	// ErrInvalidGeometry marks a structurally well-formed but geometrically
	// degenerate value: a ring with fewer than 3 distinct vertices, a
	// non-finite coordinate, or a collapsed hull.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrNonConvexInput marks a clipping input that is not convex or not
	// wound counter-clockwise.
	ErrNonConvexInput = errors.New("non-convex input")
)
