package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"geomkit/internal/geom"
	"geomkit/internal/load"
)

// resolveGeometry loads the geometry named by exactly one of an inline WKT
// flag and a file flag.
func resolveGeometry(wkt, path, wktFlag, fileFlag string) (geom.Geometry, error) {
	switch {
	case wkt != "" && path != "":
		return nil, fmt.Errorf("flags --%s and --%s are mutually exclusive", wktFlag, fileFlag)
	case wkt != "":
		return geom.ParseWKT(wkt)
	case path != "":
		return load.WKTFile(path)
	}
	return nil, fmt.Errorf("one of --%s or --%s is required", wktFlag, fileFlag)
}

// hullPoints extracts the candidate point set for a convex hull.
func hullPoints(g geom.Geometry) ([]geom.Point, error) {
	switch v := g.(type) {
	case geom.Point:
		return nil, errors.New("a single point has no hull; provide a MULTIPOINT or POLYGON")
	case geom.MultiPoint:
		return v.Points, nil
	case geom.Polygon:
		return v.Ring(), nil
	}
	return nil, fmt.Errorf("unsupported geometry %T", g)
}

func kindOf(g geom.Geometry) string {
	switch g.(type) {
	case geom.Point:
		return "point"
	case geom.MultiPoint:
		return "multipoint"
	case geom.Polygon:
		return "polygon"
	}
	return "unknown"
}

// describe renders the attribute listing printed by the parse command.
func describe(g geom.Geometry) string {
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%-12s %s\n", label+":", value)
	}

	row("kind", kindOf(g))
	switch v := g.(type) {
	case geom.Point:
		row("coordinates", num(v.X)+" "+num(v.Y))
	case geom.MultiPoint:
		row("points", strconv.Itoa(len(v.Points)))
	case geom.Polygon:
		area, orient := geom.Area(v)
		row("vertices", strconv.Itoa(v.NumVertices()))
		row("area", num(area))
		row("orientation", orient.String())
		row("convex", strconv.FormatBool(v.IsConvex()))
	}
	bb := g.Bounds()
	row("bounds", fmt.Sprintf("%s %s, %s %s", num(bb.MinX), num(bb.MinY), num(bb.MaxX), num(bb.MaxY)))
	return b.String()
}

// num matches the WKT serializer's number form.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// emitWKT prints a geometry to stdout, or writes it to out when set.
func emitWKT(g geom.Geometry, out string) error {
	if out == "" {
		fmt.Println(g.WKT())
		return nil
	}
	if err := os.WriteFile(out, []byte(g.WKT()+"\n"), 0o644); err != nil {
		return err
	}
	logrus.Debugf("wrote %s", out)
	return nil
}
