/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dataset

import (
	"fmt"
	"strconv"
	"time"

	"github.com/twine-rs/twine/meshcop/tlv"
)

const timestampLength = 8

// Timestamp orders datasets: 48 bits of seconds, 15 bits of ticks and the authoritative flag.
type Timestamp uint64

// NewTimestamp packs seconds, ticks (1/32768 s, 15 bits) and the authoritative flag.
func NewTimestamp(seconds uint64, ticks uint16, authoritative bool) Timestamp {
	v := seconds<<16 | uint64(ticks&0x7fff)<<1
	if authoritative {
		v |= 1
	}
	return Timestamp(v)
}

// Now returns the current time with zero ticks.
func Now(authoritative bool) Timestamp {
	return NewTimestamp(uint64(time.Now().Unix()), 0, authoritative)
}

func (t Timestamp) Seconds() uint64 {
	return uint64(t) >> 16
}

func (t Timestamp) Ticks() uint16 {
	return uint16(uint64(t)>>1) & 0x7fff
}

func (t Timestamp) Authoritative() bool {
	return t&1 != 0
}

// Time returns the timestamp as wall-clock time.
func (t Timestamp) Time() time.Time {
	nanos := int64(t.Ticks()) * int64(time.Second) / 32768
	return time.Unix(int64(t.Seconds()), nanos)
}

// Compare returns -1, 0 or +1 as t is older than, equal to or newer than other.
func (t Timestamp) Compare(other Timestamp) int {
	switch {
	case t < other:
		return -1
	case t > other:
		return 1
	}
	return 0
}

func (t Timestamp) String() string {
	return strconv.FormatUint(t.Seconds(), 10)
}

func (t Timestamp) GoString() string {
	return fmt.Sprintf("Timestamp { seconds: %d, ticks: %d, authoritative: %t }",
		t.Seconds(), t.Ticks(), t.Authoritative())
}

func (t Timestamp) encode(buf []byte) (int, error) {
	return tlv.EncodeUint(buf, uint64(t))
}

func decodeTimestamp(value []byte) Timestamp {
	return Timestamp(tlv.DecodeUint[uint64](value))
}

// ActiveTimestamp is the timestamp of an active dataset.
type ActiveTimestamp struct {
	Timestamp
}

func (ActiveTimestamp) TlvType() uint8 {
	return tlv.ActiveTimestamp
}

func (ActiveTimestamp) TlvLength() int {
	return timestampLength
}

func (ActiveTimestamp) ConstantTlvLength() int {
	return timestampLength
}

func (a ActiveTimestamp) EncodeValue(buf []byte) (int, error) {
	return a.encode(buf)
}

func (a *ActiveTimestamp) DecodeValue(value []byte) {
	a.Timestamp = decodeTimestamp(value)
}

// PendingTimestamp is the timestamp of a pending dataset.
type PendingTimestamp struct {
	Timestamp
}

func (PendingTimestamp) TlvType() uint8 {
	return tlv.PendingTimestamp
}

func (PendingTimestamp) TlvLength() int {
	return timestampLength
}

func (PendingTimestamp) ConstantTlvLength() int {
	return timestampLength
}

func (p PendingTimestamp) EncodeValue(buf []byte) (int, error) {
	return p.encode(buf)
}

func (p *PendingTimestamp) DecodeValue(value []byte) {
	p.Timestamp = decodeTimestamp(value)
}
