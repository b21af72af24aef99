// Package main provides the CLI entrypoint for selector-generator.
//
// selector-generator derives partial-response field selectors from Go types:
//   - Loads Go packages (go/types) to understand struct fields and tags
//   - Describes each struct as a tree of field shapes
//   - Synthesizes the selector string of each shape
//   - Generates Go constants or methods holding the selectors
package main

import (
	"fmt"
	"os"

	"selector-generator/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "selector-generator: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
