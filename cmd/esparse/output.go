package main

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"

	"github.com/deepnoodle-ai/esparse/errors"
)

var red = color.New(color.FgRed).SprintFunc()

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// useColor reports whether output to w should be colorized.
func (a *app) useColor(w any) bool {
	return !color.NoColor && !a.v.GetBool("no-color") && isTerminal(w)
}

// writeJSON prints v as indented JSON, highlighted when stdout is a
// terminal.
func (a *app) writeJSON(v any) error {
	var data []byte
	var err error
	if a.useColor(a.stdout) {
		data, err = prettyjson.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.stdout, "%s\n", data)
	return err
}

// printError reports err on stderr. Syntax errors are shown with their
// source line and a caret.
func (a *app) printError(err error) {
	colored := a.useColor(a.stderr)
	var ferr errors.FormattableError
	if stderrors.As(err, &ferr) {
		fmt.Fprint(a.stderr, errors.NewFormatter(colored).Format(ferr.ToFormatted()))
		return
	}
	msg := err.Error()
	if colored {
		msg = red(msg)
	}
	fmt.Fprintln(a.stderr, msg)
}

// printErrorList reports the errors recorded in tolerant mode.
func (a *app) printErrorList(list errors.ErrorList) {
	if list.Len() == 0 {
		return
	}
	fmt.Fprint(a.stderr, errors.NewFormatter(a.useColor(a.stderr)).FormatMultiple(list.ToFormattedMultiple()))
}

func (a *app) fatal(err error) {
	a.printError(err)
	os.Exit(1)
}
