/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dataset

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"net/netip"

	"github.com/pkg/errors"
	"github.com/twine-rs/twine/meshcop/tlv"
	"github.com/twine-rs/twine/utils/random"
)

// ExtendedPanId identifies a Thread network.
type ExtendedPanId [8]byte

// RandomExtendedPanId returns a random extended PAN ID.
func RandomExtendedPanId() ExtendedPanId {
	var x ExtendedPanId
	random.Fill(x[:])
	return x
}

// ExtendedPanIdFromUint64 returns the big-endian extended PAN ID of v.
func ExtendedPanIdFromUint64(v uint64) ExtendedPanId {
	var x ExtendedPanId
	binary.BigEndian.PutUint64(x[:], v)
	return x
}

// ParseExtendedPanId parses up to 16 hex digits.
func ParseExtendedPanId(s string) (ExtendedPanId, error) {
	var x ExtendedPanId
	err := parseHexInto(x[:], s, "extended PAN ID")
	return x, err
}

func (x ExtendedPanId) Uint64() uint64 {
	return binary.BigEndian.Uint64(x[:])
}

func (ExtendedPanId) TlvType() uint8 {
	return tlv.ExtendedPanId
}

func (ExtendedPanId) TlvLength() int {
	return 8
}

func (ExtendedPanId) ConstantTlvLength() int {
	return 8
}

func (x ExtendedPanId) EncodeValue(buf []byte) (int, error) {
	return tlv.EncodeBytes(buf, x[:])
}

func (x *ExtendedPanId) DecodeValue(value []byte) {
	copy(x[:], value)
}

func (x ExtendedPanId) String() string {
	return hex.EncodeToString(x[:])
}

// MeshLocalPrefix is the /64 prefix of the mesh-local addresses.
type MeshLocalPrefix [8]byte

// RandomULA returns a random prefix in fd00::/8.
func RandomULA() MeshLocalPrefix {
	var m MeshLocalPrefix
	m[0] = 0xfd
	random.Fill(m[1:])
	return m
}

// ParseMeshLocalPrefix parses an IPv6 /64 prefix such as fd48:b2e8:c34e:7dc7::/64.
func ParseMeshLocalPrefix(s string) (MeshLocalPrefix, error) {
	var m MeshLocalPrefix
	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		return m, errors.Wrapf(err, "invalid mesh local prefix %q", s)
	}
	if !prefix.Addr().Is6() || prefix.Bits() != 64 {
		return m, errors.Errorf("invalid mesh local prefix %q: want an IPv6 /64", s)
	}
	a := prefix.Addr().As16()
	copy(m[:], a[:8])
	return m, nil
}

// Prefix returns the prefix as a /64 IPv6 prefix.
func (m MeshLocalPrefix) Prefix() netip.Prefix {
	var a [16]byte
	copy(a[:], m[:])
	return netip.PrefixFrom(netip.AddrFrom16(a), 64)
}

func (MeshLocalPrefix) TlvType() uint8 {
	return tlv.MeshLocalPrefix
}

func (MeshLocalPrefix) TlvLength() int {
	return 8
}

func (MeshLocalPrefix) ConstantTlvLength() int {
	return 8
}

func (m MeshLocalPrefix) EncodeValue(buf []byte) (int, error) {
	return tlv.EncodeBytes(buf, m[:])
}

func (m *MeshLocalPrefix) DecodeValue(value []byte) {
	copy(m[:], value)
}

// String renders all four groups, e.g. fde2:2fdc:9477:9b16::/64.
func (m MeshLocalPrefix) String() string {
	return fmt.Sprintf("%04x:%04x:%04x:%04x::/64",
		binary.BigEndian.Uint16(m[0:2]),
		binary.BigEndian.Uint16(m[2:4]),
		binary.BigEndian.Uint16(m[4:6]),
		binary.BigEndian.Uint16(m[6:8]))
}
