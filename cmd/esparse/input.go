package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var errNoInput = errors.New("no input: pass a file, --code or --stdin")

// getSource determines the code to parse. There are three possibilities:
//  1. --code <code>
//  2. --stdin (read code from stdin)
//  3. path as args[0]
//
// The returned label names the input for locations and error messages.
func (a *app) getSource(cmd *cobra.Command, args []string) (src, label string, err error) {
	var codeFlagSet bool
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		codeFlagSet = true
	}
	stdinFlagSet := a.v.GetBool("stdin")
	pathSupplied := len(args) > 0

	if pathSupplied && (codeFlagSet || stdinFlagSet) {
		return "", "", errors.New("multiple input sources specified")
	} else if codeFlagSet && stdinFlagSet {
		return "", "", errors.New("multiple input sources specified")
	}

	switch {
	case stdinFlagSet:
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	case codeFlagSet:
		return a.v.GetString("code"), "", nil
	}
	return "", "", errNoInput
}
