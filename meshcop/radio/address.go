/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package radio

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/twine-rs/twine/utils/random"
)

// ExtendedAddress is an IEEE 802.15.4 extended (64-bit) MAC address.
type ExtendedAddress [8]byte

// RandomExtendedAddress returns a random extended address.
func RandomExtendedAddress() ExtendedAddress {
	var a ExtendedAddress
	random.Fill(a[:])
	return a
}

// ExtendedAddressFromUint64 returns the big-endian address of v.
func ExtendedAddressFromUint64(v uint64) ExtendedAddress {
	var a ExtendedAddress
	binary.BigEndian.PutUint64(a[:], v)
	return a
}

func (a ExtendedAddress) Uint64() uint64 {
	return binary.BigEndian.Uint64(a[:])
}

func (a ExtendedAddress) String() string {
	return hex.EncodeToString(a[:])
}

// Eui64 is an IEEE EUI-64 factory address.
type Eui64 [8]byte

// Eui64FromUint64 returns the big-endian EUI-64 of v.
func Eui64FromUint64(v uint64) Eui64 {
	var e Eui64
	binary.BigEndian.PutUint64(e[:], v)
	return e
}

func (e Eui64) Uint64() uint64 {
	return binary.BigEndian.Uint64(e[:])
}

func (e Eui64) String() string {
	return hex.EncodeToString(e[:])
}
