/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package radio

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/pkg/errors"
	"github.com/twine-rs/twine/meshcop/tlv"
)

const channelMaskLength = 6

// DefaultChannelMaskBits selects channels 11 through 26.
const DefaultChannelMaskBits uint32 = 0x07FFF800

// ChannelMask is a single channel mask entry: bit n of Mask selects channel n of Page.
//
// Only one entry is supported although the TLV may carry several.
type ChannelMask struct {
	Page   uint8
	Length uint8
	Mask   uint32
}

// DefaultChannelMask returns the page 0 mask of every Thread channel.
func DefaultChannelMask() ChannelMask {
	return ChannelMask{Page: 0, Length: 4, Mask: DefaultChannelMaskBits}
}

// ChannelMaskOf returns a page 0 mask selecting the given channels. Channels above 31 are ignored.
func ChannelMaskOf(channels ...uint16) ChannelMask {
	m := ChannelMask{Length: 4}
	for _, ch := range channels {
		if ch < 32 {
			m.Mask |= 1 << ch
		}
	}
	return m
}

// ParseChannelMask parses a hexadecimal page 0 mask with an optional 0x prefix.
func ParseChannelMask(s string) (ChannelMask, error) {
	v, err := parseHexUint(s, 32)
	if err != nil {
		return ChannelMask{}, errors.Wrapf(err, "invalid channel mask %q", s)
	}
	return ChannelMask{Length: 4, Mask: uint32(v)}, nil
}

// Contains returns whether ch is selected.
func (m ChannelMask) Contains(ch uint16) bool {
	return ch < 32 && m.Mask&(1<<ch) != 0
}

// Channels returns the selected channels in ascending order.
func (m ChannelMask) Channels() []uint16 {
	channels := make([]uint16, 0, bits.OnesCount32(m.Mask))
	for ch := uint16(0); ch < 32; ch++ {
		if m.Contains(ch) {
			channels = append(channels, ch)
		}
	}
	return channels
}

func (ChannelMask) TlvType() uint8 {
	return tlv.ChannelMask
}

func (ChannelMask) TlvLength() int {
	return channelMaskLength
}

func (ChannelMask) ConstantTlvLength() int {
	return channelMaskLength
}

// EncodeValue writes the mask with channel 0 in the most significant bit.
func (m ChannelMask) EncodeValue(buf []byte) (int, error) {
	if len(buf) < channelMaskLength {
		return 0, tlv.ErrBufferEncodeTooShort
	}
	buf[0] = m.Page
	buf[1] = m.Length
	binary.BigEndian.PutUint32(buf[2:6], bits.Reverse32(m.Mask))
	return channelMaskLength, nil
}

func (m *ChannelMask) DecodeValue(value []byte) {
	if len(value) < channelMaskLength {
		*m = ChannelMask{}
		return
	}
	m.Page = value[0]
	m.Length = value[1]
	m.Mask = bits.Reverse32(binary.BigEndian.Uint32(value[2:6]))
}

func (m ChannelMask) String() string {
	return fmt.Sprintf("0x%08x", m.Mask)
}
