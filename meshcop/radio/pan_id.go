/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package radio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/twine-rs/twine/meshcop/tlv"
	"github.com/twine-rs/twine/utils/random"
)

// PanId is an IEEE 802.15.4 PAN identifier.
type PanId uint16

// BroadcastPanId is the broadcast PAN identifier.
const BroadcastPanId PanId = 0xffff

// RandomPanId returns a random non-broadcast PAN identifier other than zero.
func RandomPanId() PanId {
	return PanId(random.Range[uint16](1, 0xfffe))
}

// ParsePanId parses a hexadecimal PAN identifier with an optional 0x prefix.
func ParsePanId(s string) (PanId, error) {
	v, err := parseHexUint(s, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid PAN ID %q", s)
	}
	return PanId(v), nil
}

func (PanId) TlvType() uint8 {
	return tlv.PanId
}

func (PanId) TlvLength() int {
	return 2
}

func (PanId) ConstantTlvLength() int {
	return 2
}

func (p PanId) EncodeValue(buf []byte) (int, error) {
	return tlv.EncodeUint(buf, uint16(p))
}

func (p *PanId) DecodeValue(value []byte) {
	*p = PanId(tlv.DecodeUint[uint16](value))
}

func (p PanId) String() string {
	return fmt.Sprintf("0x%04x", uint16(p))
}

func parseHexUint(s string, bitSize int) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return strconv.ParseUint(s, 16, bitSize)
}
