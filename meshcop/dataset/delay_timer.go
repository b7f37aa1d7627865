/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dataset

import (
	"math"
	"time"

	"github.com/twine-rs/twine/meshcop/tlv"
	"github.com/twine-rs/twine/utils/comparison"
)

// DelayTimer is the time in milliseconds until a pending dataset becomes active.
type DelayTimer uint32

// DelayTimerFromDuration converts d, saturating at the largest representable delay.
func DelayTimerFromDuration(d time.Duration) DelayTimer {
	return DelayTimer(comparison.Clamp(d.Milliseconds(), 0, math.MaxUint32))
}

func (d DelayTimer) Duration() time.Duration {
	return time.Duration(d) * time.Millisecond
}

func (DelayTimer) TlvType() uint8 {
	return tlv.DelayTimer
}

func (DelayTimer) TlvLength() int {
	return 4
}

func (DelayTimer) ConstantTlvLength() int {
	return 4
}

func (d DelayTimer) EncodeValue(buf []byte) (int, error) {
	return tlv.EncodeUint(buf, uint32(d))
}

func (d *DelayTimer) DecodeValue(value []byte) {
	*d = DelayTimer(tlv.DecodeUint[uint32](value))
}

func (d DelayTimer) String() string {
	return d.Duration().String()
}
