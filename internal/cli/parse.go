package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	parseWKT  string
	parseFile string
)

func init() {
	RootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseWKT, "wkt", "", "inline WKT text")
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "path to a .wkt file")
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a WKT geometry and print its attributes",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := resolveGeometry(parseWKT, parseFile, "wkt", "file")
		if err != nil {
			return err
		}
		fmt.Print(describe(g))
		return nil
	},
}
