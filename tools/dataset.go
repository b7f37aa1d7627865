/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/twine-rs/twine/core"
	"github.com/twine-rs/twine/meshcop/dataset"
	"github.com/twine-rs/twine/meshcop/radio"
	"go.uber.org/multierr"
)

// RunDatasetDecode prints every record of a hex dataset, or its YAML document with -yaml.
func RunDatasetDecode(args []string) error {
	var asYaml bool
	flagset := newFlagSet(args, "[-yaml] <hex>")
	flagset.BoolVar(&asYaml, "yaml", false, "print an editable YAML document")
	if err := parseArgs(flagset, args, 1); err != nil {
		return err
	}
	d, err := dataset.Parse(flagset.Arg(0))
	if err != nil {
		return err
	}

	if !asYaml {
		fmt.Fprint(Output, d.String())
		return nil
	}
	out, err := yaml.Marshal(d.Document())
	if err != nil {
		return errors.Wrap(err, "unable to marshal dataset")
	}
	_, err = Output.Write(out)
	return err
}

// RunDatasetEncode reads a YAML dataset document from a file, or stdin for "-", and prints it as hex.
func RunDatasetEncode(args []string) error {
	flagset := newFlagSet(args, "<file.yaml | ->")
	if err := parseArgs(flagset, args, 1); err != nil {
		return err
	}

	var in io.Reader = Input
	if path := flagset.Arg(0); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "unable to open dataset document")
		}
		defer f.Close()
		in = f
	}

	var doc dataset.Document
	dec := yaml.NewDecoder(in, yaml.Strict())
	if err := dec.Decode(&doc); err != nil {
		return errors.Wrap(err, "unable to parse dataset document")
	}
	d, err := dataset.FromDocument(doc)
	if err != nil {
		return err
	}
	fmt.Fprintln(Output, d.HexString())
	return nil
}

// RunDatasetRandom prints a fresh complete active dataset as hex.
func RunDatasetRandom(args []string) error {
	var opts dataset.RandomOptions
	flagset := newFlagSet(args, "[-prefix name]")
	flagset.StringVar(&opts.NamePrefix, "prefix",
		core.GetConfigStringDefault("dataset.network_name_prefix", dataset.DefaultNamePrefix),
		"network name prefix")
	if err := parseArgs(flagset, args, 0); err != nil {
		return err
	}

	channels, err := configuredChannels()
	if err != nil {
		return err
	}
	opts.Channels = channels

	d, err := dataset.Random(opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(Output, d.HexString())
	return nil
}

// configuredChannels reads dataset.channels, rejecting numbers outside the 2.4 GHz band.
func configuredChannels() ([]uint16, error) {
	var channels []uint16
	for _, ch := range core.GetConfigArrayInt("dataset.channels") {
		if ch < radio.MinChannel || ch > radio.MaxChannel {
			return nil, errors.Errorf("dataset.channels: channel %d out of range %d-%d",
				ch, radio.MinChannel, radio.MaxChannel)
		}
		channels = append(channels, uint16(ch))
	}
	return channels, nil
}

// RunDatasetValidate checks every known record of a hex dataset.
func RunDatasetValidate(args []string) error {
	flagset := newFlagSet(args, "<hex>")
	if err := parseArgs(flagset, args, 1); err != nil {
		return err
	}
	d, err := dataset.Parse(flagset.Arg(0))
	if err != nil {
		return err
	}

	if err := d.Validate(); err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintln(Output, e.Error())
		}
		return ErrInvalidDataset
	}
	if missing := d.Components().Missing(dataset.RequiredActive); missing != 0 {
		fmt.Fprintln(Output, "valid, missing for an active dataset: "+missing.String())
		return nil
	}
	fmt.Fprintln(Output, "valid")
	return nil
}

// RunDatasetSet changes fields of a hex dataset and prints the result.
func RunDatasetSet(args []string) error {
	var channel, panId, name, xpan, key string
	flagset := newFlagSet(args, "[flags] <hex>")
	flagset.StringVar(&channel, "channel", "", "channel number")
	flagset.StringVar(&panId, "panid", "", "PAN ID in hex")
	flagset.StringVar(&name, "name", "", "network name")
	flagset.StringVar(&xpan, "xpanid", "", "extended PAN ID in hex")
	flagset.StringVar(&key, "key", "", "network key in hex")
	if err := parseArgs(flagset, args, 1); err != nil {
		return err
	}

	d, err := dataset.Parse(flagset.Arg(0))
	if err != nil {
		return err
	}

	var errs error
	if channel != "" {
		c, err := radio.ParseChannel(channel)
		if err == nil {
			err = d.SetChannel(c)
		}
		errs = multierr.Append(errs, errors.Wrap(err, "-channel"))
	}
	if panId != "" {
		p, err := radio.ParsePanId(panId)
		if err == nil {
			err = d.SetPanId(p)
		}
		errs = multierr.Append(errs, errors.Wrap(err, "-panid"))
	}
	if name != "" {
		n, err := dataset.ParseNetworkName(name)
		if err == nil {
			err = d.SetNetworkName(n)
		}
		errs = multierr.Append(errs, errors.Wrap(err, "-name"))
	}
	if xpan != "" {
		x, err := dataset.ParseExtendedPanId(xpan)
		if err == nil {
			err = d.SetExtendedPanId(x)
		}
		errs = multierr.Append(errs, errors.Wrap(err, "-xpanid"))
	}
	if key != "" {
		k, err := dataset.ParseNetworkKey(key)
		if err == nil {
			err = d.SetNetworkKey(k)
		}
		errs = multierr.Append(errs, errors.Wrap(err, "-key"))
	}
	if errs != nil {
		return errs
	}

	fmt.Fprintln(Output, d.HexString())
	return nil
}
