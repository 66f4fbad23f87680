package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"geomkit/internal/geom"
)

var (
	areaWKT  string
	areaFile string
)

func init() {
	RootCmd.AddCommand(areaCmd)

	areaCmd.Flags().StringVar(&areaWKT, "wkt", "", "inline WKT text")
	areaCmd.Flags().StringVarP(&areaFile, "file", "f", "", "path to a .wkt file")
}

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Compute the area and winding orientation of a polygon",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := resolveGeometry(areaWKT, areaFile, "wkt", "file")
		if err != nil {
			return err
		}
		p, ok := g.(geom.Polygon)
		if !ok {
			return fmt.Errorf("area needs a polygon, got %s", kindOf(g))
		}
		area, orient := geom.Area(p)
		fmt.Printf("%-12s %s\n", "area:", num(area))
		fmt.Printf("%-12s %s\n", "orientation:", orient)
		return nil
	},
}
