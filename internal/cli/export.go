package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"geomkit/internal/draw"
	"geomkit/internal/geom"
	"geomkit/internal/load"
)

var (
	exportFile string
	exportOut  string
	exportSize int
)

func init() {
	RootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "path to a .wkt file")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output PNG path")
	exportCmd.Flags().IntVar(&exportSize, "size", 0, "longest canvas edge in pixels (default 1024)")
	exportCmd.MarkFlagRequired("file")
	exportCmd.MarkFlagRequired("out")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a geometry to a PNG image",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := load.WKTFile(exportFile)
		if err != nil {
			return err
		}
		if err := draw.PNG(exportOut, []geom.Geometry{g}, draw.Options{Size: exportSize}); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", exportOut)
		return nil
	},
}
