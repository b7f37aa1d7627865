/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twine-rs/twine/meshcop/tlv"
)

func TestEncodeChannel(t *testing.T) {
	buf := make([]byte, 8)
	n, err := tlv.EncodeTlv(buf, testChannel{page: 0, channel: 22})
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte{0x00, 0x03, 0x00, 0x00, 0x16}, buf[:n])

	_, err = tlv.EncodeTlv(buf[:4], testChannel{channel: 22})
	assert.ErrorIs(t, err, tlv.ErrBufferEncodeTooShort)
}

func TestEncodeExtended(t *testing.T) {
	var value testExtended
	for i := range value {
		value[i] = 0xAA
	}

	wire, err := tlv.Wire(value)
	require.NoError(t, err)
	assert.Equal(t, 260, len(wire))
	assert.Equal(t, []byte{0x02, 0xFF, 0x01, 0x00}, wire[:4])
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, 256), wire[4:])

	decoded, n, err := tlv.Decode[testExtended](wire)
	assert.NoError(t, err)
	assert.Equal(t, 260, n)
	assert.Equal(t, value, decoded)
}

func TestEncodeLengthBoundary(t *testing.T) {
	wire, err := tlv.Wire(testVariable(bytes.Repeat([]byte{0x01}, 254)))
	require.NoError(t, err)
	assert.Equal(t, 256, len(wire))
	assert.Equal(t, byte(254), wire[1])

	wire, err = tlv.Wire(testVariable(bytes.Repeat([]byte{0x01}, 255)))
	require.NoError(t, err)
	assert.Equal(t, 259, len(wire))
	assert.Equal(t, []byte{0x03, 0xFF, 0x00, 0xFF}, wire[:4])

	_, err = tlv.Wire(testVariable(make([]byte, 0x10000)))
	assert.ErrorIs(t, err, tlv.ErrBufferMaxLength)
}

func TestDecodeUnchecked(t *testing.T) {
	ch := tlv.DecodeUnchecked[testChannel]([]byte{0x00, 0x03, 0x00, 0x00, 0x16})
	assert.Equal(t, testChannel{page: 0, channel: 22}, ch)

	// The type byte is not checked.
	ch = tlv.DecodeUnchecked[testChannel]([]byte{0x4A, 0x03, 0x00, 0x00, 0x1A})
	assert.Equal(t, testChannel{page: 0, channel: 26}, ch)

	// Truncated input decodes as the zero value.
	ch = tlv.DecodeUnchecked[testChannel]([]byte{0x00, 0x03, 0x00})
	assert.Equal(t, testChannel{}, ch)
}

func TestDecode(t *testing.T) {
	d, n, err := tlv.Decode[testData]([]byte{0x01, 0x04, 0xAA, 0xBB, 0xCC, 0xDD, 0x99})
	assert.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, testData(0xAABBCCDD), d)

	_, _, err = tlv.Decode[testData]([]byte{0x02, 0x04, 0xAA, 0xBB, 0xCC, 0xDD})
	assert.ErrorIs(t, err, tlv.ErrBufferWrongType)

	_, _, err = tlv.Decode[testData]([]byte{0x01, 0x04, 0xAA})
	assert.ErrorIs(t, err, tlv.ErrBufferDecodeTooShort)

	_, _, err = tlv.Decode[testData]([]byte{0x01, 0x02, 0xAA, 0xBB})
	var lengthErr *tlv.UnexpectedLengthError
	require.ErrorAs(t, err, &lengthErr)
	assert.Equal(t, 4, lengthErr.Expected)
	assert.Equal(t, 2, lengthErr.Found)

	v, n, err := tlv.Decode[testVariable]([]byte{0x03, 0x02, 0xDE, 0xAD})
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, testVariable{0xDE, 0xAD}, v)
}

func TestValidateConstant(t *testing.T) {
	assert.NoError(t, tlv.ValidateConstant[testChannel]([]byte{0x00, 0x03, 0x00, 0x00, 0x16}))

	err := tlv.ValidateConstant[testChannel]([]byte{0x00, 0x03, 0x00, 0x00})
	assert.ErrorIs(t, err, tlv.ErrBufferDecodeTooShort)

	err = tlv.ValidateConstant[testChannel]([]byte{0xFF, 0x03, 0x00, 0x00, 0x16})
	assert.ErrorIs(t, err, tlv.ErrBufferWrongType)

	err = tlv.ValidateConstant[testChannel]([]byte{0x00, 0x02, 0x00, 0x00, 0x16})
	assert.ErrorIs(t, err, tlv.ErrBufferDecodeUnexpectedTlvLength)
	assert.Equal(t, &tlv.UnexpectedLengthError{Expected: 3, Found: 2}, err)
}

func TestUint(t *testing.T) {
	buf := make([]byte, 8)
	n, err := tlv.EncodeUint(buf, uint16(0xb3de))
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0xb3, 0xde}, buf[:2])
	assert.Equal(t, uint16(0xb3de), tlv.DecodeUint[uint16](buf))

	n, err = tlv.EncodeUint(buf, uint64(0x0000000000010000))
	assert.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 1, 0, 0}, buf)
	assert.Equal(t, uint64(0x10000), tlv.DecodeUint[uint64](buf))

	_, err = tlv.EncodeUint(buf[:3], uint32(1))
	assert.ErrorIs(t, err, tlv.ErrBufferEncodeTooShort)

	assert.Equal(t, 1, tlv.UintSize[uint8]())
	assert.Equal(t, 4, tlv.UintSize[uint32]())
}

func TestDecodeElement(t *testing.T) {
	wire := []byte{0x4A, 0x03, 0x00, 0x00, 0x1A, 0x01}
	e, n, err := tlv.DecodeElement(wire)
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, tlv.Element{Type: 0x4A, Value: []byte{0x00, 0x00, 0x1A}}, e)

	// The element owns its value.
	wire[4] = 0xFF
	assert.Equal(t, byte(0x1A), e.Value[2])

	assert.Equal(t, "Channel", tlv.TypeName(tlv.Channel))
	assert.Equal(t, "", tlv.TypeName(0xEE))
}
