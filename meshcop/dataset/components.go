/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dataset

import (
	"strings"

	"github.com/twine-rs/twine/meshcop/tlv"
)

// Components records which fields a dataset carries.
type Components uint16

// Dataset components.
const (
	ComponentActiveTimestamp Components = 1 << iota
	ComponentPendingTimestamp
	ComponentNetworkKey
	ComponentNetworkName
	ComponentExtendedPanId
	ComponentMeshLocalPrefix
	ComponentDelayTimer
	ComponentPanId
	ComponentChannel
	ComponentPskc
	ComponentSecurityPolicy
	ComponentChannelMask
	ComponentWakeUpChannel
)

var componentNames = []string{
	"active-timestamp",
	"pending-timestamp",
	"network-key",
	"network-name",
	"extended-pan-id",
	"mesh-local-prefix",
	"delay-timer",
	"pan-id",
	"channel",
	"pskc",
	"security-policy",
	"channel-mask",
	"wake-up-channel",
}

// RequiredActive are the components a complete active dataset carries.
const RequiredActive = ComponentActiveTimestamp | ComponentNetworkKey | ComponentNetworkName |
	ComponentExtendedPanId | ComponentMeshLocalPrefix | ComponentPanId | ComponentChannel |
	ComponentPskc | ComponentSecurityPolicy | ComponentChannelMask

// Has returns whether every component in other is present.
func (c Components) Has(other Components) bool {
	return c&other == other
}

// Missing returns the components of want that c lacks.
func (c Components) Missing(want Components) Components {
	return want &^ c
}

func (c Components) String() string {
	var names []string
	for i, name := range componentNames {
		if c&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

var componentByType = map[uint8]Components{
	tlv.ActiveTimestamp:  ComponentActiveTimestamp,
	tlv.PendingTimestamp: ComponentPendingTimestamp,
	tlv.NetworkKey:       ComponentNetworkKey,
	tlv.NetworkName:      ComponentNetworkName,
	tlv.ExtendedPanId:    ComponentExtendedPanId,
	tlv.MeshLocalPrefix:  ComponentMeshLocalPrefix,
	tlv.DelayTimer:       ComponentDelayTimer,
	tlv.PanId:            ComponentPanId,
	tlv.Channel:          ComponentChannel,
	tlv.Pskc:             ComponentPskc,
	tlv.SecurityPolicy:   ComponentSecurityPolicy,
	tlv.ChannelMask:      ComponentChannelMask,
	tlv.WakeUpChannel:    ComponentWakeUpChannel,
}
