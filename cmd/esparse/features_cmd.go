package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/esparse/syntax"
)

func newFeaturesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "features [preset]",
		Short: "List language features and whether a preset enables them",
		Long: `List every language feature with its state in the given preset
(default: "default"). Pass --feature or --preset to see the effect of
overrides.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset := a.v.GetString("preset")
			if len(args) > 0 {
				preset = args[0]
			}
			if preset == "" {
				preset = "default"
			}
			features, ok := syntax.Presets[preset]
			if !ok {
				return fmt.Errorf("unknown preset %q (available: %s)", preset, presetNames())
			}
			flags, err := cmd.Flags().GetStringArray("feature")
			if err != nil {
				return err
			}
			for _, spec := range flags {
				name, on, err := parseFeatureFlag(spec)
				if err != nil {
					return err
				}
				if err := features.Set(name, on); err != nil {
					return err
				}
			}

			w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, name := range syntax.Names() {
				state := "off"
				if features.Enabled(name) {
					state = "on"
				}
				fmt.Fprintf(w, "%s\t%s\n", name, state)
			}
			return w.Flush()
		},
	}
}

func presetNames() string {
	names := make([]string, 0, len(syntax.Presets))
	for name := range syntax.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprint(names)
}
