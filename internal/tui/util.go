package tui

import (
	"fmt"

	"geomkit/internal/geom"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func kindLabel(g geom.Geometry) string {
	switch g.(type) {
	case geom.Point:
		return "point"
	case geom.MultiPoint:
		return "multipoint"
	case geom.Polygon:
		return "polygon"
	}
	return "geometry"
}

func countsLabel(points, polygons int) string {
	return fmt.Sprintf("counts: pts=%d poly=%d", points, polygons)
}
