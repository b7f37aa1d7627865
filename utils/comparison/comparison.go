/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package comparison holds small generic helpers over ordered values.
package comparison

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b.
func Min[V constraints.Ordered](a, b V) V {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max[V constraints.Ordered](a, b V) V {
	if b > a {
		return b
	}
	return a
}

// Clamp limits v to [lo, hi].
func Clamp[V constraints.Ordered](v, lo, hi V) V {
	return Max(lo, Min(v, hi))
}
