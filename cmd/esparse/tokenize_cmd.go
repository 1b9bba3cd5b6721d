package main

import (
	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/esparse/parser"
)

func newTokenizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "tokenize [file]",
		Aliases: []string{"tokens"},
		Short:   "Split source code into tokens and print them as JSON",
		Args:    cobra.MaximumNArgs(1),
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
			stream, err := parser.Tokenize(cmd.Context(), src,
				parser.WithConfig(cfg),
				parser.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if err := a.writeJSON(stream); err != nil {
				return err
			}
			a.printErrorList(stream.Errors)
			return nil
		},
	}
}
