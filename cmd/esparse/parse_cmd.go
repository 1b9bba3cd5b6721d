package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/esparse/parser"
)

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse source code and print the syntax tree as JSON",
		Example: `  esparse parse app.js
  esparse parse --loc --range -c 'var a = 1'
  cat app.jsx | esparse parse --stdin --preset es6-jsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, label, err := a.getSource(cmd, args)
			if err != nil {
				return err
			}
			features, err := cmd.Flags().GetStringArray("feature")
			if err != nil {
				return err
			}
			cfg, err := a.parseConfig(features, label)
			if err != nil {
				return err
			}
			program, err := parser.Parse(cmd.Context(), src,
				parser.WithConfig(cfg),
				parser.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if asSource, _ := cmd.Flags().GetBool("print"); asSource {
				_, err = fmt.Fprintln(a.stdout, program.String())
			} else {
				err = a.writeJSON(program)
			}
			if err != nil {
				return err
			}
			a.printErrorList(program.Errors)
			return nil
		},
	}
	cmd.Flags().Bool("print", false, "print the tree as source text instead of JSON")
	return cmd
}
