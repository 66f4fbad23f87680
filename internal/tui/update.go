package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geomkit/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, mapW, mapH, _, _ := m.layout()
		m.mapW = max(8, mapW)
		m.mapH = max(4, mapH)
		if m.showSidebar {
			m.l.SetSize(28-2, mapH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				g, err := geom.ParseWKT(w)
				if err != nil {
					// the parse error carries the byte offset of the failure
					m.status = "wkt error: " + err.Error()
					return m, nil
				}
				m.addGeometry(g)
				m.zoom = 1.0
				m.offsetX, m.offsetY = 0, 0
				m.status = "added " + kindLabel(g) + "  " + m.layerCounts()
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showPoints = !m.showPoints
			m.status = fmt.Sprintf("points: %v", m.showPoints)
		case "2":
			m.showPolys = !m.showPolys
			m.status = fmt.Sprintf("polygons: %v", m.showPolys)
		case "3":
			m.showOverlays = !m.showOverlays
			m.status = fmt.Sprintf("overlays: %v", m.showOverlays)
		case "c":
			m.computeHull()
		case "x":
			m.computeClip()
		case "backspace":
			m.clearLayers()
			m.status = "layers cleared"
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "i":
			m.inspect()
		case "l":
			// toggle all layers
			all := m.showPoints && m.showPolys && m.showOverlays
			m.showPoints = !all
			m.showPolys = !all
			m.showOverlays = !all
			m.status = fmt.Sprintf("layers: pts=%v poly=%v over=%v", m.showPoints, m.showPolys, m.showOverlays)
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.trackHover(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// computeHull wraps the visible vertices in their convex hull overlay.
func (m *Model) computeHull() {
	pts := m.allVertices()
	hull, err := geom.ConvexHull(pts)
	if err != nil {
		m.status = "hull error: " + err.Error()
		return
	}
	m.hull = hull
	m.hasHull = true
	m.showOverlays = true
	area, _ := geom.Area(hull)
	m.status = fmt.Sprintf("hull: %d vertices  area=%.4g", hull.NumVertices(), area)
}

// computeClip intersects the first two loaded polygons. Winding is
// normalized first so hand-entered clockwise rings still clip.
func (m *Model) computeClip() {
	if len(m.polygons) < 2 {
		m.status = "clip needs two polygons"
		return
	}
	a := ccw(m.polygons[0])
	b := ccw(m.polygons[1])
	out, ok, err := geom.IntersectConvex(a, b)
	if err != nil {
		m.status = "clip error: " + err.Error()
		return
	}
	if !ok {
		m.hasClip = false
		m.status = "polygons do not intersect"
		return
	}
	m.clip = out
	m.hasClip = true
	m.showOverlays = true
	area, _ := geom.Area(out)
	m.status = fmt.Sprintf("clip: %d vertices  area=%.4g", out.NumVertices(), area)
}

func ccw(p geom.Polygon) geom.Polygon {
	if geom.SignedArea(p) < 0 {
		return p.Reverse()
	}
	return p
}

// inspect opens a popup describing the vertex nearest the viewport center.
func (m *Model) inspect() {
	v, ok := m.inspectNearest()
	if !ok {
		m.inspectPopup = "no feature nearby"
		m.status = m.inspectPopup
		return
	}
	meta := []string{
		fmt.Sprintf("nearest: x=%.6f y=%.6f", v.X, v.Y),
		fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", m.bbox.MinX, m.bbox.MinY, m.bbox.MaxX, m.bbox.MaxY),
		m.layerCounts(),
	}
	if m.selPath != "" {
		meta = append([]string{"source: " + m.selPath}, meta...)
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

// trackHover follows the mouse over the map area and records the nearest
// vertex in micro coordinates for the render highlight.
func (m *Model) trackHover(msg tea.MouseMsg) {
	_, mapW, mapH, originX, originY := m.layout()
	if m.showSidebar {
		m.l.SetSize(28-2, mapH-2)
	}

	cx, cy := msg.X, msg.Y
	if cx < originX || cx >= originX+mapW || cy < originY || cy >= originY+mapH {
		m.hovering = false
		return
	}
	m.hovering = true
	m.hoverCellX = cx - originX
	m.hoverCellY = cy - originY
	if x, y, ok := m.cellToXY(m.hoverCellX, m.hoverCellY, mapW, mapH); ok {
		m.hoverHasGeo = true
		m.hoverX = x
		m.hoverY = y
	} else {
		m.hoverHasGeo = false
	}

	// nearest vertex in micro coords
	hxMic := m.hoverCellX * 2
	hyMic := m.hoverCellY * 4
	best := 1<<31 - 1
	bx, by := hxMic, hyMic
	consider := func(p geom.Point) {
		mx, my, ok := m.screenXYMicro(p.X, p.Y, mapW, mapH)
		if !ok {
			return
		}
		dx := mx - hxMic
		dy := my - hyMic
		d := dx*dx + dy*dy
		if d < best {
			best = d
			bx, by = mx, my
		}
	}
	for _, p := range m.points {
		consider(p)
	}
	for _, poly := range m.polygons {
		r := poly.Ring()
		for _, p := range r[:len(r)-1] {
			consider(p)
		}
	}
	m.hoverMicX, m.hoverMicY = bx, by
}
