// Package draw renders geometry sets to PNG images.
package draw

import (
	"errors"

	"github.com/fogleman/gg"

	"geomkit/internal/geom"
)

// Options controls the output image. Zero values pick the defaults.
type Options struct {
	// Size is the pixel length of the longest image side (default 1024).
	Size int
	// Margin is the padding around the drawing in pixels (default 32).
	Margin int
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 1024
	}
	if o.Margin <= 0 {
		o.Margin = 32
	}
	if 2*o.Margin >= o.Size {
		o.Margin = o.Size / 4
	}
	return o
}

// PNG renders geoms to a PNG file at path. Each geometry gets its own
// palette color; polygons are filled and stroked, points drawn as dots.
// The canvas aspect ratio follows the data, the longest side is
// opts.Size pixels.
func PNG(path string, geoms []geom.Geometry, opts Options) error {
	if len(geoms) == 0 {
		return errors.New("draw: no geometries")
	}
	opts = opts.withDefaults()

	bbox := geoms[0].Bounds()
	for _, g := range geoms[1:] {
		bbox = bbox.Union(g.Bounds())
	}
	spanX := bbox.MaxX - bbox.MinX
	spanY := bbox.MaxY - bbox.MinY
	maxSpan := spanX
	if spanY > maxSpan {
		maxSpan = spanY
	}
	if maxSpan == 0 {
		// a single point still gets a canvas
		maxSpan, spanX, spanY = 1, 1, 1
		bbox.MinX -= 0.5
		bbox.MinY -= 0.5
	}

	scale := float64(opts.Size-2*opts.Margin) / maxSpan
	width := int(scale*spanX) + 2*opts.Margin
	height := int(scale*spanY) + 2*opts.Margin

	c := gg.NewContext(width, height)
	c.SetRGB(0.04, 0.06, 0.08)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(float64(opts.Margin), float64(opts.Margin))
	c.Scale(scale, scale)
	c.Translate(-bbox.MinX, -bbox.MinY)

	dotRadius := 3.0 / scale
	colors := layerColors(len(geoms))
	for i, g := range geoms {
		col := colors[i]
		switch v := g.(type) {
		case geom.Polygon:
			ring := v.Ring()
			c.MoveTo(ring[0].X, ring[0].Y)
			for _, p := range ring[1:] {
				c.LineTo(p.X, p.Y)
			}
			c.ClosePath()
			c.SetRGBA(col.R, col.G, col.B, 0.35)
			c.FillPreserve()
			c.SetLineWidth(2 / scale)
			c.SetRGBA(col.R, col.G, col.B, 1)
			c.Stroke()
		case geom.MultiPoint:
			c.SetRGBA(col.R, col.G, col.B, 1)
			for _, p := range v.Points {
				c.DrawCircle(p.X, p.Y, dotRadius)
				c.Fill()
			}
		case geom.Point:
			c.SetRGBA(col.R, col.G, col.B, 1)
			c.DrawCircle(v.X, v.Y, dotRadius)
			c.Fill()
		}
	}

	return c.SavePNG(path)
}
