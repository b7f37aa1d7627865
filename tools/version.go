/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"fmt"

	"github.com/twine-rs/twine/core"
)

// RunVersion prints the build version.
func RunVersion(args []string) error {
	flagset := newFlagSet(args, "")
	if err := parseArgs(flagset, args, 0); err != nil {
		return err
	}
	fmt.Fprintln(Output, "Twine: Thread network tooling")
	fmt.Fprintln(Output, "Version "+core.Version+" (Built "+core.BuildTime+")")
	fmt.Fprintln(Output, "Released under the terms of the MIT License")
	return nil
}
