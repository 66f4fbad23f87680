package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"geomkit/internal/geom"
)

var (
	subjectWKT  string
	subjectFile string
	clipWKT     string
	clipFile    string
	clipOut     string
)

func init() {
	RootCmd.AddCommand(clipCmd)

	clipCmd.Flags().StringVar(&subjectWKT, "subject", "", "subject polygon as inline WKT")
	clipCmd.Flags().StringVar(&subjectFile, "subject-file", "", "subject polygon from a .wkt file")
	clipCmd.Flags().StringVar(&clipWKT, "clip", "", "clip polygon as inline WKT")
	clipCmd.Flags().StringVar(&clipFile, "clip-file", "", "clip polygon from a .wkt file")
	clipCmd.Flags().StringVarP(&clipOut, "out", "o", "", "write the intersection to a file instead of stdout")
}

var clipCmd = &cobra.Command{
	Use:   "clip",
	Short: "Intersect two convex polygons",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := clipOperand(subjectWKT, subjectFile, "subject")
		if err != nil {
			return err
		}
		clip, err := clipOperand(clipWKT, clipFile, "clip")
		if err != nil {
			return err
		}
		result, ok, err := geom.IntersectConvex(subject, clip)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("polygons do not intersect")
			return nil
		}
		return emitWKT(result, clipOut)
	},
}

func clipOperand(wkt, path, name string) (geom.Polygon, error) {
	g, err := resolveGeometry(wkt, path, name, name+"-file")
	if err != nil {
		return geom.Polygon{}, err
	}
	p, ok := g.(geom.Polygon)
	if !ok {
		return geom.Polygon{}, fmt.Errorf("%s must be a polygon, got %s", name, kindOf(g))
	}
	return p, nil
}
