package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"entitygen/internal/schema"
)

func newASTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast <schema file>",
		Short: "Parse a schema file and dump its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := schema.ParseFile(args[0])
			if err != nil {
				return err
			}

			spew.Fdump(cmd.OutOrStdout(), doc)

			return nil
		},
	}

	return cmd
}
