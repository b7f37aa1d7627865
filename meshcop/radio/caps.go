/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package radio

import "strings"

// RadioCapabilities is the capability bitmap reported by a radio.
type RadioCapabilities uint8

// Radio capability flags.
const (
	CapAckTimeout      RadioCapabilities = 1 << 0
	CapEnergyScan      RadioCapabilities = 1 << 1
	CapTransmitRetries RadioCapabilities = 1 << 2
	CapCsmaBackoff     RadioCapabilities = 1 << 3
	CapSleepToTx       RadioCapabilities = 1 << 4
	CapTransmitSec     RadioCapabilities = 1 << 5
	CapTransmitTiming  RadioCapabilities = 1 << 6
	CapReceiveTiming   RadioCapabilities = 1 << 7
)

var capNames = []struct {
	cap  RadioCapabilities
	name string
}{
	{CapAckTimeout, "ack-timeout"},
	{CapEnergyScan, "energy-scan"},
	{CapTransmitRetries, "transmit-retries"},
	{CapCsmaBackoff, "csma-backoff"},
	{CapSleepToTx, "sleep-to-tx"},
	{CapTransmitSec, "transmit-sec"},
	{CapTransmitTiming, "transmit-timing"},
	{CapReceiveTiming, "receive-timing"},
}

// Has returns whether every flag in c is set.
func (r RadioCapabilities) Has(c RadioCapabilities) bool {
	return r&c == c
}

// None returns whether no capability is set.
func (r RadioCapabilities) None() bool {
	return r == 0
}

func (r RadioCapabilities) String() string {
	if r.None() {
		return "none"
	}
	var names []string
	for _, n := range capNames {
		if r.Has(n.cap) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}
