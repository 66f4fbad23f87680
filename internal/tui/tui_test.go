package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geomkit/internal/geom"
)

func sendKey(t *testing.T, m Model, k string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func testPolygon(t *testing.T, pts ...geom.Point) geom.Polygon {
	t.Helper()
	p, err := geom.NewPolygon(pts)
	require.NoError(t, err)
	return p
}

func squarePoints() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
}

func TestNewDefaults(t *testing.T) {
	m := New()
	assert.Equal(t, 1.0, m.zoom)
	assert.True(t, m.showPoints)
	assert.True(t, m.showPolys)
	assert.True(t, m.showOverlays)
	assert.False(t, m.pasteMode)
}

func TestUpdateTogglesLayers(t *testing.T) {
	m := New()
	m = sendKey(t, m, "1")
	assert.False(t, m.showPoints)
	assert.Equal(t, "points: false", m.status)

	m = sendKey(t, m, "2")
	assert.False(t, m.showPolys)

	m = sendKey(t, m, "3")
	assert.False(t, m.showOverlays)

	// l flips everything back on
	m = sendKey(t, m, "l")
	assert.True(t, m.showPoints)
	assert.True(t, m.showPolys)
	assert.True(t, m.showOverlays)
}

func TestPasteAddsGeometry(t *testing.T) {
	m := New()
	m = sendKey(t, m, "p")
	require.True(t, m.pasteMode)

	m.ta.SetValue("POLYGON((0 0,4 0,4 4,0 4))")
	m = sendKey(t, m, "enter")
	assert.False(t, m.pasteMode)
	require.Len(t, m.polygons, 1)
	assert.Contains(t, m.status, "added polygon")

	// a second paste accumulates instead of replacing
	m = sendKey(t, m, "p")
	m.ta.SetValue("POINT(2 2)")
	m = sendKey(t, m, "enter")
	require.Len(t, m.polygons, 1)
	require.Len(t, m.points, 1)
	assert.Equal(t, geom.BBox{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4}, m.bbox)
}

func TestPasteReportsParseOffset(t *testing.T) {
	m := New()
	m.pasteMode = true
	m.ta.SetValue("POLY(0 0)")
	m = sendKey(t, m, "enter")
	assert.True(t, m.pasteMode)
	assert.Contains(t, m.status, "wkt error")
	assert.Contains(t, m.status, "position 0")
}

func TestHullKey(t *testing.T) {
	m := New()
	m.points = squarePoints()
	m.recomputeBounds()

	m = sendKey(t, m, "c")
	require.True(t, m.hasHull)
	area, orient := geom.Area(m.hull)
	assert.InDelta(t, 16.0, area, 1e-12)
	assert.Equal(t, geom.CounterClockwise, orient)
	assert.Contains(t, m.status, "hull: 4 vertices")
}

func TestHullKeyTooFewPoints(t *testing.T) {
	m := New()
	m.points = []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	m.recomputeBounds()

	m = sendKey(t, m, "c")
	assert.False(t, m.hasHull)
	assert.Contains(t, m.status, "hull error")
}

func TestHullSkipsHiddenLayers(t *testing.T) {
	m := New()
	m.points = squarePoints()
	m.polygons = []geom.Polygon{testPolygon(t,
		geom.Point{X: 10, Y: 10}, geom.Point{X: 12, Y: 10}, geom.Point{X: 12, Y: 12})}
	m.recomputeBounds()
	m.showPolys = false

	m = sendKey(t, m, "c")
	require.True(t, m.hasHull)
	bb := m.hull.Bounds()
	assert.Equal(t, 4.0, bb.MaxX)
}

func TestClipKey(t *testing.T) {
	m := New()
	m.polygons = []geom.Polygon{
		testPolygon(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0}, geom.Point{X: 2, Y: 2}, geom.Point{X: 0, Y: 2}),
		// clockwise on purpose: the handler normalizes winding
		testPolygon(t, geom.Point{X: 1, Y: 1}, geom.Point{X: 1, Y: 3}, geom.Point{X: 3, Y: 3}, geom.Point{X: 3, Y: 1}),
	}
	m.recomputeBounds()

	m = sendKey(t, m, "x")
	require.True(t, m.hasClip)
	area, orient := geom.Area(m.clip)
	assert.InDelta(t, 1.0, area, 1e-12)
	assert.Equal(t, geom.CounterClockwise, orient)
	assert.Contains(t, m.status, "clip:")
}

func TestClipKeyDisjoint(t *testing.T) {
	m := New()
	m.polygons = []geom.Polygon{
		testPolygon(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 1, Y: 1}, geom.Point{X: 0, Y: 1}),
		testPolygon(t, geom.Point{X: 5, Y: 5}, geom.Point{X: 6, Y: 5}, geom.Point{X: 6, Y: 6}, geom.Point{X: 5, Y: 6}),
	}
	m.recomputeBounds()

	m = sendKey(t, m, "x")
	assert.False(t, m.hasClip)
	assert.Equal(t, "polygons do not intersect", m.status)
}

func TestClipNeedsTwoPolygons(t *testing.T) {
	m := New()
	m = sendKey(t, m, "x")
	assert.Equal(t, "clip needs two polygons", m.status)
}

func TestBackspaceClearsLayers(t *testing.T) {
	m := New()
	m.points = squarePoints()
	m.recomputeBounds()
	m = sendKey(t, m, "c")
	require.True(t, m.hasHull)

	m = sendKey(t, m, "backspace")
	assert.Empty(t, m.points)
	assert.Empty(t, m.polygons)
	assert.False(t, m.hasHull)
	assert.Equal(t, "layers cleared", m.status)
}

func TestLoadPathWKT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.wkt")
	require.NoError(t, os.WriteFile(path, []byte("POLYGON((0 0,4 0,4 4,0 4))\n"), 0o644))

	m := New()
	m.loadPath(path)
	require.Len(t, m.polygons, 1)
	assert.Equal(t, path, m.selPath)
	assert.Contains(t, m.status, "loaded: square.wkt")
}

func TestLoadPathCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pts.csv")
	require.NoError(t, os.WriteFile(path, []byte("lon,lat\n0,0\n4,0\n4,4\n"), 0o644))

	m := New()
	m.loadPath(path)
	require.Len(t, m.points, 3)
	assert.Equal(t, geom.BBox{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4}, m.bbox)
}

func TestLoadPathBadWKTKeepsLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wkt")
	require.NoError(t, os.WriteFile(path, []byte("POLY(0 0)"), 0o644))

	m := New()
	m.points = squarePoints()
	m.recomputeBounds()
	m.loadPath(path)
	assert.Len(t, m.points, 4)
	assert.Contains(t, m.status, "load error")
}

func TestLoadPathUnsupported(t *testing.T) {
	m := New()
	m.loadPath("data.json")
	assert.Equal(t, "unsupported file: .json", m.status)
}

func TestScreenProjection(t *testing.T) {
	m := New()
	m.bbox = geom.BBox{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4}

	// the micro grid is 2x4 pixels per cell
	sx, sy, ok := m.screenXYMicro(0, 0, 80, 24)
	require.True(t, ok)
	assert.Equal(t, 0, sx)
	assert.Equal(t, 95, sy)

	sx, sy, ok = m.screenXYMicro(4, 4, 80, 24)
	require.True(t, ok)
	assert.Equal(t, 159, sx)
	assert.Equal(t, 0, sy)
}

func TestCellToXYInvertsProjection(t *testing.T) {
	m := New()
	m.bbox = geom.BBox{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4}

	x, y, ok := m.cellToXY(0, 23, 80, 24)
	require.True(t, ok)
	assert.InDelta(t, 0.0, x, 1e-12)
	assert.InDelta(t, 0.0, y, 1e-12)

	x, y, ok = m.cellToXY(79, 0, 80, 24)
	require.True(t, ok)
	assert.InDelta(t, 4.0, x, 1e-12)
	assert.InDelta(t, 4.0, y, 1e-12)
}

func TestProjectionDegenerateBBox(t *testing.T) {
	m := New()
	_, _, ok := m.screenXYMicro(1, 1, 80, 24)
	assert.False(t, ok)
	_, _, ok = m.cellToXY(10, 10, 80, 24)
	assert.False(t, ok)
}

func TestAllVertices(t *testing.T) {
	m := New()
	m.points = squarePoints()
	m.polygons = []geom.Polygon{testPolygon(t,
		geom.Point{X: 10, Y: 10}, geom.Point{X: 12, Y: 10}, geom.Point{X: 12, Y: 12})}

	assert.Len(t, m.allVertices(), 7)

	m.showPoints = false
	assert.Len(t, m.allVertices(), 3)
}

func TestBuildAttributes(t *testing.T) {
	m := New()
	m.polygons = []geom.Polygon{testPolygon(t,
		geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 4, Y: 4}, geom.Point{X: 0, Y: 4})}
	m.recomputeBounds()
	m.computeHull()

	cols, rows := m.buildAttributes()
	assert.Equal(t, []string{"layer", "kind", "vertices", "area", "orientation", "convex"}, cols)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"polygon 1", "polygon", "4", "16", "counter-clockwise", "true"}, rows[0])
	assert.Equal(t, "hull", rows[1][0])
}

func TestWindowSizeTracksMapSize(t *testing.T) {
	m := New()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	assert.Equal(t, 99, m.mapW)
	assert.Equal(t, 37, m.mapH)
}

func TestInspectPopup(t *testing.T) {
	m := New()
	m.points = squarePoints()
	m.recomputeBounds()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	m = sendKey(t, m, "i")
	assert.Contains(t, m.inspectPopup, "nearest:")
	assert.Contains(t, m.inspectPopup, "counts: pts=4 poly=0")
}

func TestRenderCanvasDrawsSomething(t *testing.T) {
	m := New()
	m.polygons = []geom.Polygon{testPolygon(t,
		geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 4, Y: 4}, geom.Point{X: 0, Y: 4})}
	m.recomputeBounds()

	out := m.renderCanvas(40, 12)
	assert.NotEqual(t, "", out)
	// braille cells occupy the plane of the filled square
	var filled int
	for _, r := range out {
		if r >= 0x2800 && r <= 0x28FF {
			filled++
		}
	}
	assert.Greater(t, filled, 10)
}
