/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/twine-rs/twine/core"
	"github.com/twine-rs/twine/meshcop/dataset"
	"github.com/twine-rs/twine/store"
	"github.com/twine-rs/twine/table"
	"go.uber.org/multierr"
)

// withStore runs fn on the configured store and closes it afterwards.
func withStore(fn func(store.Store) error) (err error) {
	s, err := store.OpenConfigured()
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, s.Close())
	}()
	return fn(s)
}

// RunStorePut saves a hex dataset under a name.
func RunStorePut(args []string) error {
	flagset := newFlagSet(args, "<name> <hex>")
	if err := parseArgs(flagset, args, 2); err != nil {
		return err
	}
	name := flagset.Arg(0)
	d, err := dataset.Parse(flagset.Arg(1))
	if err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return multierr.Append(ErrInvalidDataset, err)
	}

	return withStore(func(s store.Store) error {
		if err := store.PutDataset(s, name, d); err != nil {
			return err
		}
		core.LogInfo("Store", "Saved dataset "+name)
		return nil
	})
}

// RunStoreGet prints the dataset saved under a name as hex.
func RunStoreGet(args []string) error {
	flagset := newFlagSet(args, "<name>")
	if err := parseArgs(flagset, args, 1); err != nil {
		return err
	}
	return withStore(func(s store.Store) error {
		d, err := store.GetDataset(s, flagset.Arg(0))
		if err != nil {
			return err
		}
		fmt.Fprintln(Output, d.HexString())
		return nil
	})
}

// RunStoreList prints every saved dataset with its size and fingerprint.
func RunStoreList(args []string) error {
	flagset := newFlagSet(args, "")
	if err := parseArgs(flagset, args, 0); err != nil {
		return err
	}
	return withStore(func(s store.Store) error {
		entries, err := s.List()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(Output, "%-20s %4d %016x\n", e.Name, e.Size, e.Fingerprint)
		}
		return nil
	})
}

// RunStoreRemove deletes the dataset saved under a name.
func RunStoreRemove(args []string) error {
	flagset := newFlagSet(args, "<name>")
	if err := parseArgs(flagset, args, 1); err != nil {
		return err
	}
	return withStore(func(s store.Store) error {
		return s.Remove(flagset.Arg(0))
	})
}

// RunStoreNetworks loads every saved dataset into the dataset table and prints the newest dataset of each network.
func RunStoreNetworks(args []string) error {
	flagset := newFlagSet(args, "")
	if err := parseArgs(flagset, args, 0); err != nil {
		return err
	}
	return withStore(func(s store.Store) error {
		entries, err := s.List()
		if err != nil {
			return err
		}
		for _, e := range entries {
			d, err := store.GetDataset(s, e.Name)
			if err != nil {
				return err
			}
			_, err = table.Datasets.Insert(d)
			switch {
			case errors.Is(err, table.ErrNoExtendedPanId), errors.Is(err, table.ErrStaleDataset):
				core.LogDebug("Store", "Skipping "+e.Name+": "+err.Error())
			case err != nil:
				return err
			}
		}

		for _, entry := range table.Datasets.Entries() {
			d := entry.Dataset()
			name, _ := d.NetworkName()
			ts, _ := d.ActiveTimestamp()
			fmt.Fprintf(Output, "%s %-16s %s\n", entry.ExtendedPanId, name, ts)
		}
		return nil
	})
}
