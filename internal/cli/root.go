// Package cli wires the geometry kernel into a cobra command tree.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"geomkit/internal/geom"
)

// Version is the release tag reported by the version command.
const Version = "0.1.0"

var verbose bool

var RootCmd = &cobra.Command{
	Use:   "geomkit [path]",
	Short: "geomkit is a toolkit for 2D vector geometry",
	Long: "geomkit parses WKT geometries and computes convex hulls, convex\n" +
		"intersections and areas. Run a subcommand for one-shot use, or run\n" +
		"geomkit bare (optionally with a .wkt or .csv path) to open the\n" +
		"interactive terminal viewer.",
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		geom.SetLogger(slog.New(kernelHandler{}))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return launchViewer(path)
	},
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	RootCmd.AddCommand(versionCmd)

	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of geomkit",

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("geomkit v%s\n", Version)
	},
}
