package cli

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"geomkit/internal/geom"
	"geomkit/internal/load"
)

var (
	hullWKT  string
	hullFile string
	hullOut  string
)

func init() {
	RootCmd.AddCommand(hullCmd)

	hullCmd.Flags().StringVar(&hullWKT, "wkt", "", "inline WKT text")
	hullCmd.Flags().StringVarP(&hullFile, "file", "f", "", "path to a .wkt or .csv file")
	hullCmd.Flags().StringVarP(&hullOut, "out", "o", "", "write the hull to a file instead of stdout")
}

var hullCmd = &cobra.Command{
	Use:   "hull",
	Short: "Compute the convex hull of a geometry's vertices",
	RunE: func(cmd *cobra.Command, args []string) error {
		pts, err := hullInput(hullWKT, hullFile)
		if err != nil {
			return err
		}
		hull, err := geom.ConvexHull(pts)
		if err != nil {
			return err
		}
		return emitWKT(hull, hullOut)
	},
}

// hullInput gathers candidate points from inline WKT, a .wkt file, or a
// .csv point table.
func hullInput(wkt, file string) ([]geom.Point, error) {
	if file != "" && strings.EqualFold(filepath.Ext(file), ".csv") {
		if wkt != "" {
			return nil, errors.New("flags --wkt and --file are mutually exclusive")
		}
		return load.CSVPoints(file)
	}
	g, err := resolveGeometry(wkt, file, "wkt", "file")
	if err != nil {
		return nil, err
	}
	return hullPoints(g)
}
