/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"github.com/cornelk/hashmap"
)

// Measurement keys.
const (
	MeasurementInserted = "datasets.inserted"
	MeasurementUpdated  = "datasets.updated"
	MeasurementStale    = "datasets.stale"
	MeasurementRemoved  = "datasets.removed"
)

// measurements counts dataset table events.
var measurements = hashmap.New(8)

// Measurement returns the counter at the specified key or 0 if it was never incremented.
func Measurement(key string) int {
	value, ok := measurements.GetStringKey(key)
	if !ok {
		return 0
	}
	return value.(int)
}

// addToMeasurement adds value to the counter at key, setting it if uninitialized.
func addToMeasurement(key string, value int) {
	for {
		expected, ok := measurements.GetStringKey(key)
		if ok {
			if measurements.Cas(key, expected, expected.(int)+value) {
				return
			}
			continue
		}
		// GetOrInsert reports true when another writer got there first.
		if _, loaded := measurements.GetOrInsert(key, value); !loaded {
			return
		}
	}
}
