/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv_test

import (
	"encoding/binary"

	"github.com/twine-rs/twine/meshcop/tlv"
)

// testChannel mimics the channel record: page byte then big-endian channel.
type testChannel struct {
	page    uint8
	channel uint16
}

func (testChannel) TlvType() uint8         { return 0x00 }
func (testChannel) TlvLength() int         { return 3 }
func (testChannel) ConstantTlvLength() int { return 3 }

func (c testChannel) EncodeValue(buf []byte) (int, error) {
	if len(buf) < 3 {
		return 0, tlv.ErrBufferEncodeTooShort
	}
	buf[0] = c.page
	binary.BigEndian.PutUint16(buf[1:3], c.channel)
	return 3, nil
}

func (c *testChannel) DecodeValue(value []byte) {
	c.page = value[0]
	c.channel = binary.BigEndian.Uint16(value[1:3])
}

type testData uint32

func (testData) TlvType() uint8         { return 0x01 }
func (testData) TlvLength() int         { return 4 }
func (testData) ConstantTlvLength() int { return 4 }

func (d testData) EncodeValue(buf []byte) (int, error) {
	return tlv.EncodeUint(buf, uint32(d))
}

func (d *testData) DecodeValue(value []byte) {
	*d = testData(tlv.DecodeUint[uint32](value))
}

type testExtended [256]byte

func (testExtended) TlvType() uint8         { return 0x02 }
func (testExtended) TlvLength() int         { return 256 }
func (testExtended) ConstantTlvLength() int { return 256 }

func (e testExtended) EncodeValue(buf []byte) (int, error) {
	return tlv.EncodeBytes(buf, e[:])
}

func (e *testExtended) DecodeValue(value []byte) {
	copy(e[:], value)
}

type testVariable []byte

func (testVariable) TlvType() uint8 { return 0x03 }

func (v testVariable) TlvLength() int {
	return len(v)
}

func (v testVariable) EncodeValue(buf []byte) (int, error) {
	return tlv.EncodeBytes(buf, v)
}

func (v *testVariable) DecodeValue(value []byte) {
	*v = append(testVariable(nil), value...)
}

// failingValue reports a length but refuses to encode.
type failingValue struct{}

func (failingValue) TlvType() uint8 { return 0x09 }
func (failingValue) TlvLength() int { return 2 }

func (failingValue) EncodeValue(buf []byte) (int, error) {
	buf[0] = 0xEE
	return 0, tlv.ErrBufferEncodeTooShort
}

func collectionOf(capacity int, b ...byte) *tlv.Collection {
	c, err := tlv.NewCollectionFromBytes(capacity, b)
	if err != nil {
		panic(err)
	}
	return c
}
