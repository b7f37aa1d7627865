/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dataset

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"github.com/twine-rs/twine/meshcop/tlv"
	"github.com/twine-rs/twine/utils/comparison"
)

// MaxNetworkNameLength is the longest network name in bytes.
const MaxNetworkNameLength = 16

// NetworkName is a human readable network name of up to 16 bytes.
// The array keeps one extra byte so it is always NUL terminated.
type NetworkName [MaxNetworkNameLength + 1]byte

// ParseNetworkName returns s as a network name.
func ParseNetworkName(s string) (NetworkName, error) {
	var n NetworkName
	if len(s) > MaxNetworkNameLength {
		return n, &tlv.MaxLengthError{What: "network name", Max: MaxNetworkNameLength, Found: len(s)}
	}
	if i := strings.IndexByte(s, 0); i >= 0 {
		return n, errors.Wrapf(ErrInvalidNetworkName, "at byte %d", i)
	}
	copy(n[:], s)
	return n, nil
}

func (NetworkName) TlvType() uint8 {
	return tlv.NetworkName
}

// TlvLength returns the number of bytes before the first NUL.
func (n NetworkName) TlvLength() int {
	if i := bytes.IndexByte(n[:], 0); i >= 0 {
		return i
	}
	return MaxNetworkNameLength
}

func (n NetworkName) EncodeValue(buf []byte) (int, error) {
	return tlv.EncodeBytes(buf, n[:n.TlvLength()])
}

// DecodeValue keeps at most MaxNetworkNameLength bytes.
func (n *NetworkName) DecodeValue(value []byte) {
	*n = NetworkName{}
	copy(n[:], value[:comparison.Min(len(value), MaxNetworkNameLength)])
}

func (n NetworkName) String() string {
	return string(n[:n.TlvLength()])
}
