package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geomkit/internal/geom"
)

func TestResolveGeometry(t *testing.T) {
	g, err := resolveGeometry("POINT(1 2)", "", "wkt", "file")
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 1, Y: 2}, g)

	_, err = resolveGeometry("", "", "wkt", "file")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--wkt or --file")

	_, err = resolveGeometry("POINT(1 2)", "also.wkt", "wkt", "file")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestResolveGeometryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.wkt")
	require.NoError(t, os.WriteFile(path, []byte("POLYGON((0 0,4 0,4 4,0 4))\n"), 0o644))

	g, err := resolveGeometry("", path, "wkt", "file")
	require.NoError(t, err)
	p, ok := g.(geom.Polygon)
	require.True(t, ok)
	assert.Equal(t, 4, p.NumVertices())
}

func TestHullPoints(t *testing.T) {
	_, err := hullPoints(geom.Point{X: 1, Y: 2})
	assert.Error(t, err)

	mp, err := geom.NewMultiPoint([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	pts, err := hullPoints(mp)
	require.NoError(t, err)
	assert.Len(t, pts, 2)

	poly, err := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}})
	require.NoError(t, err)
	pts, err = hullPoints(poly)
	require.NoError(t, err)
	// the closed ring carries the repeated first vertex; the hull dedupes it
	assert.Len(t, pts, 4)
}

func TestHullInputCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,lon,lat\na,0,0\nb,4,0\nc,4,4\nd,0,4\n"), 0o644))

	pts, err := hullInput("", path)
	require.NoError(t, err)
	require.Len(t, pts, 4)

	hull, err := geom.ConvexHull(pts)
	require.NoError(t, err)
	area, orient := geom.Area(hull)
	assert.InDelta(t, 16.0, area, 1e-12)
	assert.Equal(t, geom.CounterClockwise, orient)

	_, err = hullInput("POINT(0 0)", path)
	assert.Error(t, err)
}

func TestClipOperand(t *testing.T) {
	p, err := clipOperand("POLYGON((0 0,2 0,2 2,0 2))", "", "subject")
	require.NoError(t, err)
	assert.Equal(t, 4, p.NumVertices())

	_, err = clipOperand("POINT(1 1)", "", "subject")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subject must be a polygon")
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, "point", kindOf(geom.Point{}))
	assert.Equal(t, "multipoint", kindOf(geom.MultiPoint{}))
	assert.Equal(t, "polygon", kindOf(geom.Polygon{}))
}

func TestDescribePolygon(t *testing.T) {
	g, err := geom.ParseWKT("POLYGON((0 0,4 0,4 4,0 4,0 0))")
	require.NoError(t, err)

	out := describe(g)
	assert.Contains(t, out, "kind:        polygon")
	assert.Contains(t, out, "vertices:    4")
	assert.Contains(t, out, "area:        16")
	assert.Contains(t, out, "orientation: counter-clockwise")
	assert.Contains(t, out, "convex:      true")
	assert.Contains(t, out, "bounds:      0 0, 4 4")
}

func TestDescribePoint(t *testing.T) {
	g, err := geom.ParseWKT("POINT(1.5 -2.25)")
	require.NoError(t, err)

	out := describe(g)
	assert.Contains(t, out, "kind:        point")
	assert.Contains(t, out, "coordinates: 1.5 -2.25")
	assert.Contains(t, out, "bounds:      1.5 -2.25, 1.5 -2.25")
}

func TestEmitWKT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wkt")
	require.NoError(t, emitWKT(geom.Point{X: 1, Y: 2}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "POINT(1 2)\n", string(data))
}

func TestLogrusLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, logrusLevel(slog.LevelDebug))
	assert.Equal(t, logrus.InfoLevel, logrusLevel(slog.LevelInfo))
	assert.Equal(t, logrus.WarnLevel, logrusLevel(slog.LevelWarn))
	assert.Equal(t, logrus.ErrorLevel, logrusLevel(slog.LevelError))
}
