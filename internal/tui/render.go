package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geomkit/internal/geom"
)

// cellToXY converts a map cell coordinate back to data coordinates using
// bbox, zoom, and pan.
func (m Model) cellToXY(cx, cy, w, h int) (float64, float64, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	y := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return x, y, true
}

func (m Model) renderCanvas(w, h int) string {
	// Plain background
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		row := make([]rune, w)
		for x := 0; x < w; x++ {
			row[x] = ' '
		}
		lines[y] = string(row)
	}
	// High-resolution braille buffer for crisp edges
	br := newBrailleBuf(w, h)

	// Source polygons: fill then edges
	if m.showPolys {
		for _, poly := range m.polygons {
			m.drawPolygon(br, poly, w, h, true)
		}
	}
	// Derived overlays: edges only, so they read as outlines over the fill
	if m.showOverlays {
		if m.hasHull {
			m.drawPolygon(br, m.hull, w, h, false)
		}
		if m.hasClip {
			m.drawPolygon(br, m.clip, w, h, false)
		}
	}

	// Points
	if m.showPoints && len(m.points) > 0 && m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY {
		for _, p := range m.points {
			mx, my, ok := m.screenXYMicro(p.X, p.Y, w, h)
			if !ok {
				continue
			}
			br.setPixel(mx, my)
		}
	}

	// Composite braille overlay onto base lines
	braLines := br.toLines()
	for y := 0; y < h && y < len(braLines); y++ {
		if len(braLines[y]) == 0 {
			continue
		}
		base := []rune(lines[y])
		over := []rune(braLines[y])
		for x := 0; x < len(base) && x < len(over); x++ {
			if over[x] != ' ' {
				base[x] = over[x]
			}
		}
		lines[y] = string(base)
	}

	// Hover highlight: draw an orange circle at the hovered vertex cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				circle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("◯")
				pre := string(r[:cx])
				post := string(r[cx+1:])
				lines[cy] = pre + circle + post
			}
		}
	}
	return strings.Join(lines, "\n")
}

// drawPolygon projects a ring onto the microgrid and draws it, optionally
// filled with an even-odd scanline pass.
func (m Model) drawPolygon(br *brailleBuf, poly geom.Polygon, w, h int, fill bool) {
	ring := poly.Ring()
	open := ring[:len(ring)-1]
	mic := make([][2]int, 0, len(open))
	for _, p := range open {
		mx, my, ok := m.screenXYMicro(p.X, p.Y, w, h)
		if !ok {
			return
		}
		mic = append(mic, [2]int{mx, my})
	}
	if len(mic) < 3 {
		return
	}
	if fill {
		hMic := h * 4
		for yMic := 0; yMic < hMic; yMic++ {
			var xs []int
			for i := 0; i < len(mic); i++ {
				a := mic[i]
				b := mic[(i+1)%len(mic)]
				if a[1] == b[1] { // horizontal edge: skip
					continue
				}
				y0, y1 := a[1], b[1]
				x0, x1 := a[0], b[0]
				if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
					t := float64(yMic-y0) / float64(y1-y0)
					x := int(float64(x0) + t*float64(x1-x0))
					xs = append(xs, x)
				}
			}
			if len(xs) >= 2 {
				sort.Ints(xs)
				for i := 0; i+1 < len(xs); i += 2 {
					xstart := xs[i]
					xend := xs[i+1]
					if xstart > xend {
						xstart, xend = xend, xstart
					}
					for xMic := max(0, xstart); xMic <= xend; xMic++ {
						br.setPixel(xMic, yMic)
					}
				}
			}
		}
	}
	for i := 0; i < len(mic); i++ {
		a := mic[i]
		b := mic[(i+1)%len(mic)]
		br.drawLineMicro(a[0], a[1], b[0], b[1])
	}
}

// screenXYMicro maps data coordinates into a 2x4 microgrid per cell for
// braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	nx := (x - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (y - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// inspectNearest finds the vertex closest to the viewport center in data
// space.
func (m Model) inspectNearest() (geom.Point, bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy, ok := m.cellToXY(w/2, h/2, w, h)
	if !ok {
		return geom.Point{}, false
	}
	center := geom.Point{X: cx, Y: cy}
	best := math.Inf(1)
	var nearest geom.Point
	found := false
	consider := func(p geom.Point) {
		if d := p.DistanceTo(center); d < best {
			best = d
			nearest = p
			found = true
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
	return nearest, found
}
