/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twine-rs/twine/meshcop/dataset"
	"github.com/twine-rs/twine/meshcop/radio"
	"github.com/twine-rs/twine/meshcop/tlv"
)

func TestDocumentRoundTrip(t *testing.T) {
	d := parseSample(t)
	doc := d.Document()

	assert.Equal(t, uint64(1), doc.ActiveTimestamp.Seconds)
	assert.Equal(t, uint16(12), *doc.Channel)
	assert.Equal(t, uint16(19), *doc.WakeUpChannel)
	assert.Equal(t, "0x07fff800", doc.ChannelMask)
	assert.Equal(t, "1bb896bef533a585", doc.ExtendedPanId)
	assert.Equal(t, "fd48:b2e8:c34e:7dc7::/64", doc.MeshLocalPrefix)
	assert.Equal(t, "OpenThread-b3de", doc.NetworkName)
	assert.Equal(t, "0xb3de", doc.PanId)
	assert.Equal(t, "672 onrc 0", doc.SecurityPolicy)
	assert.Nil(t, doc.PendingTimestamp)
	assert.Empty(t, doc.Unknown)

	rebuilt, err := dataset.FromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, sampleDataset, rebuilt.HexString())
}

func TestDocumentChannelPages(t *testing.T) {
	d := dataset.New()
	require.NoError(t, d.SetChannel(radio.NewChannel(2, 5)))
	require.NoError(t, d.SetWakeUpChannel(radio.NewChannel(2, 7)))

	doc := d.Document()
	assert.Equal(t, uint8(2), doc.ChannelPage)
	assert.Equal(t, uint8(2), doc.WakeUpChannelPage)

	rebuilt, err := dataset.FromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, d.HexString(), rebuilt.HexString())
	wakeUp, ok := rebuilt.WakeUpChannel()
	require.True(t, ok)
	assert.Equal(t, uint8(2), wakeUp.Page)
	assert.Equal(t, uint16(7), wakeUp.Number)
}

func TestDocumentUnknownRecords(t *testing.T) {
	d, err := dataset.Parse("0102b3de7f02abcd")
	require.NoError(t, err)
	doc := d.Document()
	assert.Equal(t, []string{"7f02abcd"}, doc.Unknown)

	rebuilt, err := dataset.FromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, d.Bytes(), rebuilt.Bytes())
}

func TestDocumentErrors(t *testing.T) {
	_, err := dataset.FromDocument(dataset.Document{
		NetworkName:    "ThisNameIsWayTooLong",
		NetworkKey:     "not hex",
		SecurityPolicy: "672 x 0",
		Unknown:        []string{"7f02ab"},
	})
	assert.ErrorIs(t, err, tlv.ErrBufferMaxLength)
	assert.ErrorIs(t, err, tlv.ErrHex)
	assert.ErrorIs(t, err, dataset.ErrInvalidSecurityPolicy)
	assert.ErrorIs(t, err, tlv.ErrBufferDecodeTooShort)
	assert.Contains(t, err.Error(), "network_name")
	assert.Contains(t, err.Error(), "unknown")
}

func TestParseSecurityPolicy(t *testing.T) {
	for _, s := range []string{"672 onrc 0", "672  0", "1 oCepLR 2", "672 o 0", "65535 nc 1"} {
		p, err := dataset.ParseSecurityPolicy(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, p.String())
	}

	p, err := dataset.ParseSecurityPolicy("672 onrc 0")
	require.NoError(t, err)
	assert.Equal(t, dataset.DefaultSecurityPolicy(), p)

	for _, s := range []string{"", "672 onrc", "x onrc 0", "672 onrc 8", "672 z 0", "70000 o 0"} {
		_, err := dataset.ParseSecurityPolicy(s)
		assert.ErrorIs(t, err, dataset.ErrInvalidSecurityPolicy, s)
	}
}

func TestParseMeshLocalPrefix(t *testing.T) {
	m, err := dataset.ParseMeshLocalPrefix("fd48:b2e8:c34e:7dc7::/64")
	require.NoError(t, err)
	assert.Equal(t, dataset.MeshLocalPrefix{0xfd, 0x48, 0xb2, 0xe8, 0xc3, 0x4e, 0x7d, 0xc7}, m)

	_, err = dataset.ParseMeshLocalPrefix("fd48::/48")
	assert.Error(t, err)
	_, err = dataset.ParseMeshLocalPrefix("10.0.0.0/8")
	assert.Error(t, err)
	_, err = dataset.ParseMeshLocalPrefix("fd48")
	assert.Error(t, err)
}
