/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package random provides the randomness used to generate network parameters.
package random

import (
	"crypto/rand"
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// Fill fills b with cryptographically secure random bytes.
func Fill(b []byte) {
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS entropy source is unusable
		panic("random: " + err.Error())
	}
}

// Uint64 returns a random 64-bit value.
func Uint64() uint64 {
	var b [8]byte
	Fill(b[:])
	return binary.BigEndian.Uint64(b[:])
}

// Range returns a random value in [lo, hi]. It returns lo if hi < lo.
func Range[V constraints.Unsigned](lo V, hi V) V {
	if hi <= lo {
		return lo
	}
	span := uint64(hi - lo)
	if span == ^uint64(0) {
		return V(Uint64())
	}
	return lo + V(Uint64()%(span+1))
}

// Pick returns a random element of choices, or the zero value if choices is empty.
func Pick[T any](choices []T) T {
	var zero T
	if len(choices) == 0 {
		return zero
	}
	return choices[Range(uint64(0), uint64(len(choices)-1))]
}
