// Package tui is an interactive terminal viewer for geomkit geometries.
package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"geomkit/internal/geom"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data layers
	points   []geom.Point
	polygons []geom.Polygon
	bbox     geom.BBox

	// Derived overlays
	hull    geom.Polygon
	hasHull bool
	clip    geom.Polygon
	hasClip bool

	// last computed map size (for inspect and hover)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints   bool
	showPolys    bool
	showOverlays bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverX      float64
	hoverY      float64

	// attributes table
	showAttrs bool
	tbl       table.Model
}

func New() Model {
	m := Model{
		showSidebar:  false,
		helpVisible:  true,
		zoom:         1.0,
		status:       "geomkit ready",
		showPoints:   true,
		showPolys:    true,
		showOverlays: true,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, POLYGON). Press Enter to add; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// layout computes the content geometry shared by View, mouse handling, and
// the inspect popup.
func (m Model) layout() (sidebarW, mapW, mapH, originX, originY int) {
	if m.showSidebar {
		sidebarW = 28
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	mapW = contentWidth - sidebarW - 1
	if mapW < 10 {
		mapW = 10
	}
	mapH = contentHeight
	originX = sidebarW
	if m.showSidebar {
		originX++
	}
	originY = headerHeight
	return sidebarW, mapW, mapH, originX, originY
}

// clearLayers drops all data layers and derived overlays.
func (m *Model) clearLayers() {
	m.points = nil
	m.polygons = nil
	m.hasHull = false
	m.hasClip = false
	m.bbox = geom.BBox{}
}

// addGeometry merges a parsed geometry into the data layers.
func (m *Model) addGeometry(g geom.Geometry) {
	switch v := g.(type) {
	case geom.Point:
		m.points = append(m.points, v)
	case geom.MultiPoint:
		m.points = append(m.points, v.Points...)
	case geom.Polygon:
		m.polygons = append(m.polygons, v)
	}
	m.recomputeBounds()
}

// recomputeBounds unions the bounds of every source layer. Overlays are
// derived from the sources and never extend the box.
func (m *Model) recomputeBounds() {
	var bb geom.BBox
	first := true
	grow := func(b geom.BBox) {
		if first {
			bb = b
			first = false
			return
		}
		bb = bb.Union(b)
	}
	for _, p := range m.points {
		grow(p.Bounds())
	}
	for _, poly := range m.polygons {
		grow(poly.Bounds())
	}
	m.bbox = bb
}

// allVertices gathers every vertex of the visible source layers, the
// candidate set for the hull key.
func (m Model) allVertices() []geom.Point {
	var pts []geom.Point
	if m.showPoints {
		pts = append(pts, m.points...)
	}
	if m.showPolys {
		for _, poly := range m.polygons {
			r := poly.Ring()
			pts = append(pts, r[:len(r)-1]...)
		}
	}
	return pts
}

// layerCounts is the status-line summary of the loaded data.
func (m Model) layerCounts() string {
	return countsLabel(len(m.points), len(m.polygons))
}
