// Package load reads geometry inputs from files. The geometry kernel
// itself never touches the filesystem; every file-based surface (CLI
// flags, the TUI file explorer) goes through here.
package load

import (
	"os"

	"geomkit/internal/geom"
)

// WKTFile parses the geometry contained in a WKT text file. The parser
// tolerates surrounding whitespace, so parse error offsets always refer
// to byte positions in the file itself.
func WKTFile(path string) (geom.Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return geom.ParseWKT(string(data))
}
