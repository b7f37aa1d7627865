/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package radio contains the IEEE 802.15.4 radio parameters carried in MeshCoP TLVs.
package radio

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/twine-rs/twine/meshcop/tlv"
	"github.com/twine-rs/twine/utils/random"
)

// 2.4 GHz O-QPSK channels usable by Thread on page 0.
const (
	MinChannel = 11
	MaxChannel = 26
)

const channelLength = 3

// Channel is a channel page and number.
type Channel struct {
	Page   uint8
	Number uint16
}

// NewChannel returns a channel on the given page.
func NewChannel(page uint8, number uint16) Channel {
	return Channel{Page: page, Number: number}
}

// RandomChannel returns a random page 0 channel in [MinChannel, MaxChannel].
func RandomChannel() Channel {
	return Channel{Number: random.Range[uint16](MinChannel, MaxChannel)}
}

// RandomChannelFrom returns a random page 0 channel out of allowed, or RandomChannel if allowed is empty.
func RandomChannelFrom(allowed []uint16) Channel {
	if len(allowed) == 0 {
		return RandomChannel()
	}
	return Channel{Number: random.Pick(allowed)}
}

// ParseChannel parses a decimal channel number on page 0.
func ParseChannel(s string) (Channel, error) {
	number, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return Channel{}, errors.Wrapf(err, "invalid channel %q", s)
	}
	return Channel{Number: uint16(number)}, nil
}

func (Channel) TlvType() uint8 {
	return tlv.Channel
}

func (Channel) TlvLength() int {
	return channelLength
}

func (Channel) ConstantTlvLength() int {
	return channelLength
}

func (c Channel) EncodeValue(buf []byte) (int, error) {
	if len(buf) < channelLength {
		return 0, tlv.ErrBufferEncodeTooShort
	}
	buf[0] = c.Page
	binary.BigEndian.PutUint16(buf[1:3], c.Number)
	return channelLength, nil
}

func (c *Channel) DecodeValue(value []byte) {
	if len(value) < channelLength {
		*c = Channel{}
		return
	}
	c.Page = value[0]
	c.Number = binary.BigEndian.Uint16(value[1:3])
}

func (c Channel) String() string {
	if c.Page != 0 {
		return fmt.Sprintf("%d (page %d)", c.Number, c.Page)
	}
	return strconv.Itoa(int(c.Number))
}

// WakeUpChannel is the channel used to wake sleepy devices. It shares the Channel layout.
type WakeUpChannel struct {
	Channel
}

func (WakeUpChannel) TlvType() uint8 {
	return tlv.WakeUpChannel
}
