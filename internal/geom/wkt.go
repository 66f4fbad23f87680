package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports where parsing stopped and what was expected there.
type ParseError struct {
	Offset   int    // byte offset into the input
	Expected string // description of the expected token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s at position %d", e.Expected, e.Offset)
}

// ParseWKT parses a geometry from its textual form:
//
//	POINT(x y)
//	MULTIPOINT(x y, x y, ...)
//	POLYGON((x y, x y, ...))
//
// Keywords are case-insensitive and whitespace between tokens carries no
// meaning except as the separator inside a coordinate pair. Numbers are
// plain decimals with an optional sign and fraction, no exponents.
//
// Malformed text fails with a *ParseError carrying the byte offset of the
// failure. Well-formed text describing a degenerate geometry (a ring with
// fewer than 3 distinct vertices) fails with ErrInvalidGeometry instead.
// A polygon ring that is not explicitly closed is closed automatically.
func ParseWKT(input string) (Geometry, error) {
	p := &wktParser{src: input}
	p.skipSpace()
	start := p.pos
	var g Geometry
	var err error
	switch strings.ToUpper(p.keyword()) {
	case "POINT":
		g, err = p.point()
	case "MULTIPOINT":
		g, err = p.multiPoint()
	case "POLYGON":
		g, err = p.polygon()
	default:
		return nil, &ParseError{Offset: start, Expected: "geometry keyword"}
	}
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, &ParseError{Offset: p.pos, Expected: "end of input"}
	}
	return g, nil
}

// wktParser is a single left-to-right pass over the source text.
type wktParser struct {
	src string
	pos int
}

func (p *wktParser) skipSpace() int {
	n := 0
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
		n++
	}
	return n
}

// keyword consumes a run of letters at the current position.
func (p *wktParser) keyword() string {
	start := p.pos
	for p.pos < len(p.src) && isAlpha(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// expect consumes the given punctuation byte, skipping leading whitespace.
func (p *wktParser) expect(ch byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != ch {
		return &ParseError{Offset: p.pos, Expected: fmt.Sprintf("'%c'", ch)}
	}
	p.pos++
	return nil
}

// number parses ["-"] digits ["." digits] at the current position.
func (p *wktParser) number() (float64, error) {
	start := p.pos
	if p.pos < len(p.src) && p.src[p.pos] == '-' {
		p.pos++
		if !p.digits() {
			return 0, &ParseError{Offset: p.pos, Expected: "digit"}
		}
	} else if !p.digits() {
		return 0, &ParseError{Offset: start, Expected: "number"}
	}
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos++
		if !p.digits() {
			return 0, &ParseError{Offset: p.pos, Expected: "digit"}
		}
	}
	// the matched text is a plain decimal, so ParseFloat only fails by
	// overflowing to an infinity; constructors reject that downstream
	v, _ := strconv.ParseFloat(p.src[start:p.pos], 64)
	return v, nil
}

func (p *wktParser) digits() bool {
	n := 0
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
		n++
	}
	return n > 0
}

// coord parses "number whitespace number". The separator between the two
// numbers is the one place whitespace is mandatory.
func (p *wktParser) coord() (Point, error) {
	p.skipSpace()
	x, err := p.number()
	if err != nil {
		return Point{}, err
	}
	if p.skipSpace() == 0 {
		return Point{}, &ParseError{Offset: p.pos, Expected: "whitespace"}
	}
	y, err := p.number()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// coordList parses coord ("," coord)*.
func (p *wktParser) coordList() ([]Point, error) {
	var pts []Point
	for {
		pt, err := p.coord()
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		return pts, nil
	}
}

func (p *wktParser) point() (Geometry, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	pt, err := p.coord()
	if err != nil {
		return nil, err
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return NewPoint(pt.X, pt.Y)
}

func (p *wktParser) multiPoint() (Geometry, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	pts, err := p.coordList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return NewMultiPoint(pts)
}

func (p *wktParser) polygon() (Geometry, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	ring, err := p.coordList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return NewPolygon(ring)
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func isAlpha(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// WKT returns the textual form of the point.
func (p Point) WKT() string {
	return "POINT(" + wktCoord(p) + ")"
}

// WKT returns the textual form of the multipoint.
func (mp MultiPoint) WKT() string {
	var b strings.Builder
	b.WriteString("MULTIPOINT(")
	for i, p := range mp.Points {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(wktCoord(p))
	}
	b.WriteByte(')')
	return b.String()
}

// WKT returns the textual form of the polygon with the ring explicitly
// closed.
func (pg Polygon) WKT() string {
	var b strings.Builder
	b.WriteString("POLYGON((")
	for i, p := range pg.ring {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(wktCoord(p))
	}
	b.WriteString("))")
	return b.String()
}

func (p Point) String() string       { return p.WKT() }
func (mp MultiPoint) String() string { return mp.WKT() }
func (pg Polygon) String() string    { return pg.WKT() }

func wktCoord(p Point) string {
	return formatCoord(p.X) + " " + formatCoord(p.Y)
}

// formatCoord renders a coordinate in the shortest decimal form that
// parses back to the same float64. The 'f' format never produces an
// exponent, so the output always stays inside the grammar.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
