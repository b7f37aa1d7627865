/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package tools implements the twine sub-commands.
package tools

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/twine-rs/twine/cmd"
)

// Input feeds tools reading "-". Output receives the results of every tool. Diagnostics go to Errors.
var (
	Input  io.Reader = os.Stdin
	Output io.Writer = os.Stdout
	Errors io.Writer = os.Stderr
)

// ErrInvalidDataset is returned by dataset validate when a record is malformed.
var ErrInvalidDataset = errors.New("invalid dataset")

// newFlagSet returns a flag set that prints usage, then the flag defaults, to Errors.
func newFlagSet(args []string, usage string) *flag.FlagSet {
	flagset := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flagset.SetOutput(Errors)
	flagset.Usage = func() {
		fmt.Fprintf(Errors, "Usage: %s %s\n", args[0], usage)
		flagset.PrintDefaults()
	}
	return flagset
}

// parseArgs parses args and requires exactly n positional arguments.
// Bad command lines match cmd.ErrUsage; -h returns flag.ErrHelp unchanged.
func parseArgs(flagset *flag.FlagSet, args []string, n int) error {
	if err := flagset.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errors.Wrap(cmd.ErrUsage, err.Error())
	}
	if flagset.NArg() != n {
		flagset.Usage()
		return errors.Wrapf(cmd.ErrUsage, "expected %d argument(s), got %d", n, flagset.NArg())
	}
	return nil
}
