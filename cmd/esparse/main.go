package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	v      *viper.Viper
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger zerolog.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		v:      viper.New(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: zerolog.Nop(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "esparse",
		Short:         "Parse JavaScript into an ESTree syntax tree",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			a.processGlobalFlags()
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.esparse.yaml)")
	flags.Bool("no-color", false, "disable colored output")
	flags.BoolP("verbose", "v", false, "log parser activity to stderr")

	// Input
	flags.StringP("code", "c", "", "source code to parse")
	flags.Bool("stdin", false, "read source code from stdin")

	// Parse options
	flags.Bool("range", false, "record byte ranges")
	flags.Bool("loc", false, "record line and column locations")
	flags.Bool("comment", false, "collect comments")
	flags.Bool("attach-comment", false, "attach comments to nodes (implies --range and --comment)")
	flags.Bool("tokens", false, "collect the token stream")
	flags.Bool("tolerant", false, "report recoverable errors instead of failing")
	flags.String("source", "", "source label for locations (defaults to the file name)")
	flags.String("preset", "", "feature preset: default, es5, es6 or es6-jsx")
	flags.StringArray("feature", nil, "enable or disable a feature, as name=bool (repeatable)")
	flags.Int("max-depth", 0, "maximum nesting depth")

	a.bindFlags(flags)

	root.AddCommand(newParseCmd(a), newTokenizeCmd(a), newFeaturesCmd(a))
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	return root
}

// processGlobalFlags adjusts the environment from the global flags.
func (a *app) processGlobalFlags() {
	if a.v.GetBool("no-color") {
		color.NoColor = true
	}
	if a.v.GetBool("verbose") {
		a.logger = zerolog.New(zerolog.ConsoleWriter{
			Out:     a.stderr,
			NoColor: color.NoColor,
		}).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}
}

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := newRootCmd(a).Execute(); err != nil {
		a.fatal(err)
	}
}
