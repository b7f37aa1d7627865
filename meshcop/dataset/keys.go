/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dataset

import (
	"encoding/hex"

	"github.com/twine-rs/twine/meshcop/tlv"
	"github.com/twine-rs/twine/utils/random"
)

// KeySize is the size of the network key and the PSKc.
const KeySize = 16

// NetworkKey is the Thread network master key.
type NetworkKey [KeySize]byte

// RandomNetworkKey returns a random network key.
func RandomNetworkKey() NetworkKey {
	var k NetworkKey
	random.Fill(k[:])
	return k
}

// ParseNetworkKey parses up to 32 hex digits. Shorter strings are zero padded on the left.
func ParseNetworkKey(s string) (NetworkKey, error) {
	var k NetworkKey
	err := parseHexInto(k[:], s, "network key")
	return k, err
}

func (NetworkKey) TlvType() uint8 {
	return tlv.NetworkKey
}

func (NetworkKey) TlvLength() int {
	return KeySize
}

func (NetworkKey) ConstantTlvLength() int {
	return KeySize
}

func (k NetworkKey) EncodeValue(buf []byte) (int, error) {
	return tlv.EncodeBytes(buf, k[:])
}

func (k *NetworkKey) DecodeValue(value []byte) {
	copy(k[:], value)
}

func (k NetworkKey) String() string {
	return hex.EncodeToString(k[:])
}

// Pskc is the pre-shared key for the commissioner.
type Pskc [KeySize]byte

// RandomPskc returns a random PSKc.
func RandomPskc() Pskc {
	var p Pskc
	random.Fill(p[:])
	return p
}

// ParsePskc parses up to 32 hex digits. Shorter strings are zero padded on the left.
func ParsePskc(s string) (Pskc, error) {
	var p Pskc
	err := parseHexInto(p[:], s, "PSKc")
	return p, err
}

func (Pskc) TlvType() uint8 {
	return tlv.Pskc
}

func (Pskc) TlvLength() int {
	return KeySize
}

func (Pskc) ConstantTlvLength() int {
	return KeySize
}

func (p Pskc) EncodeValue(buf []byte) (int, error) {
	return tlv.EncodeBytes(buf, p[:])
}

func (p *Pskc) DecodeValue(value []byte) {
	copy(p[:], value)
}

func (p Pskc) String() string {
	return hex.EncodeToString(p[:])
}
