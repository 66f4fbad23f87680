package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"geomkit/internal/load"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".wkt" || ext == ".csv" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no .wkt or .csv files in current directory"
	}
}

// loadPath replaces the data layers with a file's contents.
func (m *Model) loadPath(p string) {
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".wkt":
		g, err := load.WKTFile(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		m.clearLayers()
		m.addGeometry(g)
	case ".csv":
		pts, err := load.CSVPoints(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		m.clearLayers()
		m.points = pts
		m.recomputeBounds()
	default:
		m.status = "unsupported file: " + ext
		return
	}
	m.selPath = p
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.status = "loaded: " + filepath.Base(p) + "  " + m.layerCounts()
	if m.showAttrs {
		m.refreshAttrs()
	}
}
