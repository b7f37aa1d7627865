/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// Typed is implemented by values bound to a MeshCoP TLV type.
type Typed interface {
	TlvType() uint8
}

// ValueEncoder writes the value part of a record.
//
// EncodeValue must write exactly TlvLength bytes into buf, which the caller
// guarantees is at least that long.
type ValueEncoder interface {
	TlvLength() int
	EncodeValue(buf []byte) (int, error)
}

// Value is a typed value that can be encoded as a complete record.
type Value interface {
	Typed
	ValueEncoder
}

// ConstantLength is implemented by types whose encoded value always has the same length.
type ConstantLength interface {
	ConstantTlvLength() int
}

// ValueDecoder is the constraint satisfied by pointers to decodable types.
//
// DecodeValue receives exactly the value bytes of a record already located
// and bounds-checked by the caller; it does not look at the type.
type ValueDecoder[T any] interface {
	*T
	Typed
	DecodeValue(value []byte)
}

// ConstantDecoder is ValueDecoder restricted to constant-length types.
type ConstantDecoder[T any] interface {
	ValueDecoder[T]
	ConstantLength
}

// TypeOf returns the TLV type of T.
func TypeOf[T any, PT ValueDecoder[T]]() uint8 {
	var v T
	return PT(&v).TlvType()
}

// Encode writes a complete record with the given type and value into buf, returning the number of bytes written.
func Encode(buf []byte, tlvType uint8, v ValueEncoder) (int, error) {
	length := v.TlvLength()
	if length > MaxLength {
		return 0, &MaxLengthError{What: "TLV value", Max: MaxLength, Found: length}
	}
	size := EncodedSize(length)
	if len(buf) < size {
		return 0, ErrBufferEncodeTooShort
	}

	buf[0] = tlvType
	n, err := EncodeLength(buf[1:], length)
	if err != nil {
		return 0, err
	}
	written, err := v.EncodeValue(buf[1+n : size])
	if err != nil {
		return 0, err
	}
	return 1 + n + written, nil
}

// EncodeTlv writes v as a complete record under its own type.
func EncodeTlv(buf []byte, v Value) (int, error) {
	return Encode(buf, v.TlvType(), v)
}

// Wire returns v encoded as a freshly allocated record.
func Wire(v Value) ([]byte, error) {
	length := v.TlvLength()
	if length > MaxLength || length < 0 {
		return nil, &MaxLengthError{What: "TLV value", Max: MaxLength, Found: length}
	}
	buf := make([]byte, EncodedSize(length))
	n, err := EncodeTlv(buf, v)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// header reads the type and length of the record at the front of wire and returns the value bounds.
func header(wire []byte) (tlvType uint8, start int, end int, err error) {
	if len(wire) < 2 {
		return 0, 0, 0, ErrBufferDecodeTooShort
	}
	length, n, err := DecodeLength(wire[1:])
	if err != nil {
		return 0, 0, 0, err
	}
	start = 1 + n
	end = start + length
	if end > len(wire) {
		return 0, 0, 0, ErrBufferDecodeTooShort
	}
	return wire[0], start, end, nil
}

// DecodeUnchecked decodes the record at the front of wire as T without verifying its type.
//
// wire must start with a complete record; a truncated record decodes as the zero value.
func DecodeUnchecked[T any, PT ValueDecoder[T]](wire []byte) T {
	var v T
	_, start, end, err := header(wire)
	if err != nil {
		return v
	}
	PT(&v).DecodeValue(wire[start:end])
	return v
}

// Decode decodes the record at the front of wire as T, checking its bounds, type and, for constant-length types, its length.
// It returns the value and the number of bytes the record occupies.
func Decode[T any, PT ValueDecoder[T]](wire []byte) (T, int, error) {
	var v T
	tlvType, start, end, err := header(wire)
	if err != nil {
		return v, 0, err
	}
	if tlvType != PT(&v).TlvType() {
		return v, 0, ErrBufferWrongType
	}
	if c, ok := any(PT(&v)).(ConstantLength); ok && c.ConstantTlvLength() != end-start {
		return v, 0, &UnexpectedLengthError{Expected: c.ConstantTlvLength(), Found: end - start}
	}
	PT(&v).DecodeValue(wire[start:end])
	return v, end, nil
}

// ValidateConstant checks that wire starts with a well-formed record of the constant-length type T.
func ValidateConstant[T any, PT ConstantDecoder[T]](wire []byte) error {
	var v T
	expected := PT(&v).ConstantTlvLength()
	if len(wire) < EncodedSize(expected) {
		return ErrBufferDecodeTooShort
	}
	if wire[0] != PT(&v).TlvType() {
		return ErrBufferWrongType
	}
	length, _, err := DecodeLength(wire[1:])
	if err != nil {
		return err
	}
	if length != expected {
		return &UnexpectedLengthError{Expected: expected, Found: length}
	}
	return nil
}
