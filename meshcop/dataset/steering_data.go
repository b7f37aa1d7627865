/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dataset

import (
	"encoding/hex"

	"github.com/twine-rs/twine/meshcop/tlv"
	"github.com/twine-rs/twine/utils/comparison"
)

// MaxSteeringDataLength is the longest steering data bloom filter.
const MaxSteeringDataLength = 16

// SteeringData is the bloom filter of joiners a commissioner accepts.
type SteeringData struct {
	length int
	filter [MaxSteeringDataLength]byte
}

// NewSteeringData returns steering data holding filter.
func NewSteeringData(filter []byte) (SteeringData, error) {
	var s SteeringData
	if len(filter) > MaxSteeringDataLength {
		return s, &tlv.MaxLengthError{What: "steering data", Max: MaxSteeringDataLength, Found: len(filter)}
	}
	s.length = copy(s.filter[:], filter)
	return s, nil
}

// AllowAll returns a one-byte filter that admits every joiner.
func AllowAll() SteeringData {
	s, _ := NewSteeringData([]byte{0xff})
	return s
}

// Bytes returns a copy of the filter.
func (s SteeringData) Bytes() []byte {
	return append([]byte(nil), s.filter[:s.length]...)
}

func (SteeringData) TlvType() uint8 {
	return tlv.SteeringData
}

func (s SteeringData) TlvLength() int {
	return s.length
}

func (s SteeringData) EncodeValue(buf []byte) (int, error) {
	return tlv.EncodeBytes(buf, s.filter[:s.length])
}

func (s *SteeringData) DecodeValue(value []byte) {
	*s = SteeringData{}
	s.length = copy(s.filter[:], value[:comparison.Min(len(value), MaxSteeringDataLength)])
}

func (s SteeringData) String() string {
	return hex.EncodeToString(s.filter[:s.length])
}
