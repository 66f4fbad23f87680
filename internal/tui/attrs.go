package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"geomkit/internal/geom"
)

// refreshAttrs rebuilds the attributes table from the loaded layers.
func (m *Model) refreshAttrs() {
	cols, rows := m.buildAttributes()
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes: nothing loaded"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for _, c := range cols {
		w := len(c) + 4
		if w < 10 {
			w = 10
		}
		tcols = append(tcols, table.Column{Title: c, Width: w})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, strconv.Itoa(i+1))
		row = append(row, r...)
		// normalize to the column count
		for len(row) < len(tcols) {
			row = append(row, "")
		}
		trows = append(trows, table.Row(row[:len(tcols)]))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes summarizes every layer with the kernel's metrics.
func (m *Model) buildAttributes() ([]string, [][]string) {
	cols := []string{"layer", "kind", "vertices", "area", "orientation", "convex"}
	var rows [][]string
	if len(m.points) > 0 {
		rows = append(rows, []string{"points", "multipoint", strconv.Itoa(len(m.points)), "", "", ""})
	}
	for i, poly := range m.polygons {
		rows = append(rows, polygonRow(fmt.Sprintf("polygon %d", i+1), poly))
	}
	if m.hasHull {
		rows = append(rows, polygonRow("hull", m.hull))
	}
	if m.hasClip {
		rows = append(rows, polygonRow("clip", m.clip))
	}
	return cols, rows
}

func polygonRow(layer string, poly geom.Polygon) []string {
	area, orient := geom.Area(poly)
	return []string{
		layer,
		"polygon",
		strconv.Itoa(poly.NumVertices()),
		strconv.FormatFloat(area, 'f', -1, 64),
		orient.String(),
		strconv.FormatBool(poly.IsConvex()),
	}
}
