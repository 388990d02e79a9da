// Package main provides the CLI entrypoint for entitygen.
//
// entitygen reads a GraphQL SDL schema whose object types may carry an
// @entity directive and generates one strongly-typed Go wrapper per entity
// type, backed by a generic boxed-value record store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "entitygen",
		Short:         "Generate typed entity wrappers from a GraphQL schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenCmd(), newCheckCmd(), newASTCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
