/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"encoding/binary"
	"math"
)

// ExtendedLength is the length byte announcing a two-byte big-endian length.
const ExtendedLength = 0xFF

// MaxLength is the largest value length the extended form can carry.
const MaxLength = math.MaxUint16

// LengthSize returns the number of bytes the length field of a value of the given length occupies.
func LengthSize(length int) int {
	if length < ExtendedLength {
		return 1
	}
	return 3
}

// EncodedSize returns the size of a whole record (type, length field and value) carrying a value of the given length.
func EncodedSize(length int) int {
	return 1 + LengthSize(length) + length
}

// EncodeLength writes a length field into buf and returns the number of bytes written.
func EncodeLength(buf []byte, length int) (int, error) {
	if length < 0 || length > MaxLength {
		return 0, &MaxLengthError{What: "TLV length", Max: MaxLength, Found: length}
	}

	if length < ExtendedLength {
		if len(buf) < 1 {
			return 0, ErrBufferEncodeTooShort
		}
		buf[0] = byte(length)
		return 1, nil
	}

	if len(buf) < 3 {
		return 0, ErrBufferEncodeTooShort
	}
	buf[0] = ExtendedLength
	binary.BigEndian.PutUint16(buf[1:3], uint16(length))
	return 3, nil
}

// DecodeLength reads a length field from the front of buf, returning the length and the number of bytes consumed.
func DecodeLength(buf []byte) (int, int, error) {
	if len(buf) < 1 {
		return 0, 0, ErrBufferDecodeTooShort
	}

	if buf[0] != ExtendedLength {
		return int(buf[0]), 1, nil
	}
	if len(buf) < 3 {
		return 0, 0, ErrBufferDecodeTooShort
	}
	return int(binary.BigEndian.Uint16(buf[1:3])), 3, nil
}
