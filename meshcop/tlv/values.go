/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// UintSize returns the wire size of an unsigned integer of type V.
func UintSize[V constraints.Unsigned]() int {
	var v V
	return int(unsafe.Sizeof(v))
}

// EncodeUint writes v in big-endian order into the first UintSize[V] bytes of buf.
func EncodeUint[V constraints.Unsigned](buf []byte, v V) (int, error) {
	size := UintSize[V]()
	if len(buf) < size {
		return 0, ErrBufferEncodeTooShort
	}
	for i := size - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	return size, nil
}

// DecodeUint reads a big-endian V from the front of value. Missing trailing bytes read as zero.
func DecodeUint[V constraints.Unsigned](value []byte) V {
	var v V
	size := UintSize[V]()
	for i := 0; i < size; i++ {
		v <<= 8
		if i < len(value) {
			v |= V(value[i])
		}
	}
	return v
}

// EncodeBytes copies src into buf.
func EncodeBytes(buf []byte, src []byte) (int, error) {
	if len(buf) < len(src) {
		return 0, ErrBufferEncodeTooShort
	}
	return copy(buf, src), nil
}

// Element is a raw record of any type.
type Element struct {
	Type  uint8
	Value []byte
}

// TlvType returns the record type.
func (e Element) TlvType() uint8 {
	return e.Type
}

// TlvLength returns the value length.
func (e Element) TlvLength() int {
	return len(e.Value)
}

// EncodeValue copies the value into buf.
func (e Element) EncodeValue(buf []byte) (int, error) {
	return EncodeBytes(buf, e.Value)
}

// DecodeElement decodes the record at the front of wire without interpreting its value.
// The returned value is a copy. It also returns the number of bytes the record occupies.
func DecodeElement(wire []byte) (Element, int, error) {
	tlvType, start, end, err := header(wire)
	if err != nil {
		return Element{}, 0, err
	}
	value := make([]byte, end-start)
	copy(value, wire[start:end])
	return Element{Type: tlvType, Value: value}, end, nil
}
