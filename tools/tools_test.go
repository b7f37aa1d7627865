/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools_test

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twine-rs/twine/cmd"
	"github.com/twine-rs/twine/core"
	"github.com/twine-rs/twine/meshcop/dataset"
	"github.com/twine-rs/twine/meshcop/tlv"
	"github.com/twine-rs/twine/table"
	"github.com/twine-rs/twine/tools"
)

const sampleDataset = "0e080000000000010000000300000c4a0300001335060004001fffe002081bb896bef533a585" +
	"0708fd48b2e8c34e7dc70510e9b948988752752873570d09ada4d0be030f4f70656e5468726561642d62336465" +
	"0102b3de0410f9f07ed37fbb6828fb3b26b63bdea3c30c0402a0f7f8"

func capture(t *testing.T) *bytes.Buffer {
	var out bytes.Buffer
	tools.Output = &out
	tools.Errors = io.Discard
	return &out
}

func useStore(t *testing.T, backend string) {
	path := filepath.ToSlash(filepath.Join(t.TempDir(), "twine.db"))
	require.NoError(t, core.LoadConfigString("[store]\nbackend = \""+backend+"\"\npath = \""+path+"\"\n"))
	t.Cleanup(core.ResetConfig)
	table.Datasets = table.NewDatasetTable()
}

func TestDatasetDecode(t *testing.T) {
	out := capture(t)
	require.NoError(t, tools.RunDatasetDecode([]string{"decode", sampleDataset}))
	assert.Contains(t, out.String(), "Network Name: OpenThread-b3de\n")
	assert.Contains(t, out.String(), "Security Policy: 672 onrc 0\n")

	assert.ErrorIs(t, tools.RunDatasetDecode([]string{"decode"}), cmd.ErrUsage)
	assert.ErrorIs(t, tools.RunDatasetDecode([]string{"decode", sampleDataset, "extra"}), cmd.ErrUsage)
	assert.ErrorIs(t, tools.RunDatasetDecode([]string{"decode", "-bogus", sampleDataset}), cmd.ErrUsage)
	assert.ErrorIs(t, tools.RunDatasetDecode([]string{"decode", "-h"}), flag.ErrHelp)
	assert.ErrorIs(t, tools.RunDatasetDecode([]string{"decode", "0e0"}), tlv.ErrHex)
}

func TestDatasetYamlRoundTrip(t *testing.T) {
	out := capture(t)
	require.NoError(t, tools.RunDatasetDecode([]string{"decode", "-yaml", sampleDataset}))
	doc := out.String()
	assert.Contains(t, doc, "network_name: OpenThread-b3de")
	assert.Contains(t, doc, "security_policy: 672 onrc 0")

	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	out.Reset()
	require.NoError(t, tools.RunDatasetEncode([]string{"encode", path}))
	assert.Equal(t, sampleDataset+"\n", out.String())

	tools.Input = strings.NewReader("channel: 15\npan_id: \"0x1234\"\n")
	defer func() { tools.Input = os.Stdin }()
	out.Reset()
	require.NoError(t, tools.RunDatasetEncode([]string{"encode", "-"}))
	assert.Equal(t, "000300000f01021234\n", out.String())

	tools.Input = strings.NewReader("channel: 15\nbogus: 1\n")
	assert.Error(t, tools.RunDatasetEncode([]string{"encode", "-"}))
	assert.Error(t, tools.RunDatasetEncode([]string{"encode", filepath.Join(t.TempDir(), "missing.yaml")}))
}

func TestDatasetRandom(t *testing.T) {
	out := capture(t)
	require.NoError(t, core.LoadConfigString("[dataset]\nnetwork_name_prefix = \"Lab\"\nchannels = [20]\n"))
	defer core.ResetConfig()

	require.NoError(t, tools.RunDatasetRandom([]string{"random"}))
	d, err := dataset.Parse(out.String())
	require.NoError(t, err)
	assert.True(t, d.IsActiveComplete())
	name, _ := d.NetworkName()
	assert.True(t, strings.HasPrefix(name.String(), "Lab-"))
	channel, _ := d.Channel()
	assert.Equal(t, uint16(20), channel.Number)

	out.Reset()
	require.NoError(t, tools.RunDatasetRandom([]string{"random", "-prefix", "Home"}))
	d, err = dataset.Parse(out.String())
	require.NoError(t, err)
	name, _ = d.NetworkName()
	assert.True(t, strings.HasPrefix(name.String(), "Home-"))

	require.NoError(t, core.LoadConfigString("[dataset]\nchannels = [30]\n"))
	assert.Error(t, tools.RunDatasetRandom([]string{"random"}))
}

func TestDatasetValidate(t *testing.T) {
	out := capture(t)
	require.NoError(t, tools.RunDatasetValidate([]string{"validate", sampleDataset}))
	assert.Equal(t, "valid\n", out.String())

	out.Reset()
	require.NoError(t, tools.RunDatasetValidate([]string{"validate", "0102b3de"}))
	assert.True(t, strings.HasPrefix(out.String(), "valid, missing for an active dataset: "))

	out.Reset()
	err := tools.RunDatasetValidate([]string{"validate", "00040000000c0103b3de00"})
	assert.ErrorIs(t, err, tools.ErrInvalidDataset)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Channel TLV"))
	assert.True(t, strings.HasPrefix(lines[1], "PAN ID TLV"))
}

func TestDatasetSet(t *testing.T) {
	out := capture(t)
	args := []string{"set", "-channel", "15", "-panid", "0x1234", "-name", "Lab", sampleDataset}
	require.NoError(t, tools.RunDatasetSet(args))

	d, err := dataset.Parse(out.String())
	require.NoError(t, err)
	channel, _ := d.Channel()
	assert.Equal(t, uint16(15), channel.Number)
	panId, _ := d.PanId()
	assert.Equal(t, "0x1234", panId.String())
	name, _ := d.NetworkName()
	assert.Equal(t, "Lab", name.String())

	out.Reset()
	err = tools.RunDatasetSet([]string{"set", "-name", "ThisNameIsWayTooLong", "-key", "zz", sampleDataset})
	assert.ErrorIs(t, err, tlv.ErrBufferMaxLength)
	assert.ErrorIs(t, err, tlv.ErrHex)
	assert.Empty(t, out.String())
}

func TestStoreCommands(t *testing.T) {
	for _, backend := range []string{"bolt", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			out := capture(t)
			useStore(t, backend)

			require.NoError(t, tools.RunStorePut([]string{"put", "home", sampleDataset}))
			require.NoError(t, tools.RunStoreGet([]string{"get", "home"}))
			assert.Equal(t, sampleDataset+"\n", out.String())

			out.Reset()
			require.NoError(t, tools.RunStoreList([]string{"list"}))
			assert.True(t, strings.HasPrefix(out.String(), "home "))
			assert.Contains(t, out.String(), " 111 ")

			out.Reset()
			require.NoError(t, tools.RunStoreNetworks([]string{"networks"}))
			assert.Equal(t, "1bb896bef533a585 OpenThread-b3de  1\n", out.String())

			require.NoError(t, tools.RunStoreRemove([]string{"rm", "home"}))
			err := tools.RunStoreGet([]string{"get", "home"})
			assert.Error(t, err)

			err = tools.RunStorePut([]string{"put", "bad", "00040000000c"})
			assert.ErrorIs(t, err, tools.ErrInvalidDataset)
		})
	}
}

func TestStoreNetworksKeepsNewest(t *testing.T) {
	out := capture(t)
	useStore(t, "bolt")

	older, err := dataset.Parse(sampleDataset)
	require.NoError(t, err)
	newer := older.Clone()
	require.NoError(t, newer.SetActiveTimestamp(dataset.NewTimestamp(5, 0, false)))

	// "a-new" sorts first, so the older dataset is refused as stale.
	require.NoError(t, tools.RunStorePut([]string{"put", "a-new", newer.HexString()}))
	require.NoError(t, tools.RunStorePut([]string{"put", "b-old", older.HexString()}))

	require.NoError(t, tools.RunStoreNetworks([]string{"networks"}))
	assert.Equal(t, "1bb896bef533a585 OpenThread-b3de  5\n", out.String())
}

func TestVersion(t *testing.T) {
	out := capture(t)
	core.Version = "1.2.3"
	require.NoError(t, tools.RunVersion([]string{"version"}))
	assert.Contains(t, out.String(), "Version 1.2.3")
}
