/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/twine-rs/twine/cmd"
	"github.com/twine-rs/twine/core"
	"github.com/twine-rs/twine/table"
	"github.com/twine-rs/twine/tools"
)

// Version of twine.
var Version string

// BuildTime contains the timestamp of when the version of twine was built.
var BuildTime string

func main() {
	// Provide metadata to the tools.
	core.Version = Version
	core.BuildTime = BuildTime
	core.StartTimestamp = time.Now()

	// Global options come before the command.
	flagset := flag.NewFlagSet("twine", flag.ExitOnError)
	configFile := flagset.String("config", "", "TOML configuration file")
	flagset.Parse(os.Args[1:])

	if *configFile != "" {
		if err := core.LoadConfig(*configFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	core.InitializeLoggerTo(os.Stderr)
	table.Configure()

	// create a command tree
	tree := cmd.CmdTree{
		Name: "twine",
		Help: "Thread network tooling",
		Sub: []*cmd.CmdTree{{
			Name: "dataset",
			Help: "Decode, generate and edit operational datasets",
			Sub: []*cmd.CmdTree{{
				Name: "decode",
				Help: "Print every record of a hex dataset",
				Fun:  tools.RunDatasetDecode,
			}, {
				Name: "encode",
				Help: "Encode a YAML dataset document as hex",
				Fun:  tools.RunDatasetEncode,
			}, {
				Name: "random",
				Help: "Generate a complete active dataset",
				Fun:  tools.RunDatasetRandom,
			}, {
				Name: "validate",
				Help: "Check the records of a hex dataset",
				Fun:  tools.RunDatasetValidate,
			}, {
				Name: "set",
				Help: "Change fields of a hex dataset",
				Fun:  tools.RunDatasetSet,
			}},
		}, {
			Name: "store",
			Help: "Manage saved datasets",
			Sub: []*cmd.CmdTree{{
				Name: "put",
				Help: "Save a dataset under a name",
				Fun:  tools.RunStorePut,
			}, {
				Name: "get",
				Help: "Print a saved dataset",
				Fun:  tools.RunStoreGet,
			}, {
				Name: "list",
				Help: "List saved datasets",
				Fun:  tools.RunStoreList,
			}, {
				Name: "rm",
				Help: "Delete a saved dataset",
				Fun:  tools.RunStoreRemove,
			}, {
				Name: "networks",
				Help: "Show the newest saved dataset of each network",
				Fun:  tools.RunStoreNetworks,
			}},
		}, {
			// tools separator
		}, {
			Name: "version",
			Help: "Print version and exit",
			Fun:  tools.RunVersion,
		}},
	}

	args := append([]string{tree.Name}, flagset.Args()...)
	err := tree.Execute(args)
	switch {
	case err == nil:
	case errors.Is(err, cmd.ErrUsage), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		core.LogError("Main", err.Error())
		os.Exit(1)
	}
}
