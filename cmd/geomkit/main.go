// Command geomkit is a toolkit for parsing, analyzing and viewing 2D
// vector geometries.
package main

import (
	"os"

	"geomkit/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
