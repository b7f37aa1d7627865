/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package cmd dispatches nested command lines to their handlers.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const banner = `
  _            _
 | |___      _(_)_ __   ___
 | __\ \ /\ / / | '_ \ / _ \
 | |_ \ V  V /| | | | |  __/
  \__| \_/\_/ |_|_| |_|\___|
`

// ErrUsage is returned when the command line names no runnable command.
var ErrUsage = errors.New("usage")

type CmdTree struct {
	Name string
	Help string
	Sub  []*CmdTree
	Fun  func([]string) error
	// Output receives usage text. Defaults to os.Stderr.
	Output io.Writer
}

func (c *CmdTree) output() io.Writer {
	if c.Output == nil {
		return os.Stderr
	}
	return c.Output
}

// Usage prints the sub-commands of c and returns ErrUsage.
func (c *CmdTree) Usage(args []string) error {
	w := c.output()
	fmt.Fprintln(w, banner[1:])
	fmt.Fprintf(w, "%s (%s)\n\n", c.Help, c.Name)
	fmt.Fprintf(w, "Usage: %s [command]\n", args[0])
	for _, sub := range c.Sub {
		if sub.Name == "" {
			fmt.Fprintln(w)
			continue
		}
		spaces := strings.Repeat(" ", max(16-len(sub.Name), 1))
		fmt.Fprintf(w, "  %s%s%s\n", sub.Name, spaces, sub.Help)
	}
	fmt.Fprintln(w)
	return ErrUsage
}

// Execute runs the command named by args. args[0] is the name the tree was invoked as.
func (c *CmdTree) Execute(args []string) error {
	// eagerly execute command if found
	if c.Fun != nil {
		return c.Fun(args)
	}

	if len(args) <= 1 {
		return c.Usage(args)
	}

	// recursively search for subcommand
	for _, sub := range c.Sub {
		if len(sub.Name) > 0 && args[1] == sub.Name {
			if sub.Output == nil {
				sub.Output = c.Output
			}
			name := args[0] + " " + args[1]
			sargs := append([]string{name}, args[2:]...)
			return sub.Execute(sargs)
		}
	}

	// command not found
	return c.Usage(args)
}
