/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// MeshCoP TLV types.
const (
	// Network parameters
	Channel         = 0x00
	PanId           = 0x01
	ExtendedPanId   = 0x02
	NetworkName     = 0x03
	Pskc            = 0x04
	NetworkKey      = 0x05
	NetworkKeySeq   = 0x06
	MeshLocalPrefix = 0x07

	// Commissioning
	SteeringData          = 0x08
	BorderAgentLocator    = 0x09
	CommissionerId        = 0x0A
	CommissionerSessionId = 0x0B
	SecurityPolicy        = 0x0C
	Get                   = 0x0D
	ActiveTimestamp       = 0x0E
	CommissionerUdpPort   = 0x0F
	State                 = 0x10
	JoinerDtlsEncap       = 0x11
	JoinerUdpPort         = 0x12
	JoinerIid             = 0x13
	JoinerRouterLocator   = 0x14
	JoinerRouterKek       = 0x15

	// Provisioning
	ProvisioningUrl = 0x20
	VendorName      = 0x21
	VendorModel     = 0x22
	VendorSwVersion = 0x23
	VendorData      = 0x24
	VendorStackVer  = 0x25

	// Pending dataset
	UdpEncapsulation = 0x30
	Ipv6Address      = 0x31
	PendingTimestamp = 0x33
	DelayTimer       = 0x34
	ChannelMask      = 0x35
	Count            = 0x36
	Period           = 0x37
	ScanDuration     = 0x38
	EnergyList       = 0x39

	// Thread 1.4
	WakeUpChannel = 0x4A

	// Discovery
	DiscoveryRequest  = 0x80
	DiscoveryResponse = 0x81
	JoinerAdvert      = 0xF1
)

var typeNames = map[uint8]string{
	Channel:          "Channel",
	PanId:            "PAN ID",
	ExtendedPanId:    "Extended PAN ID",
	NetworkName:      "Network Name",
	Pskc:             "PSKc",
	NetworkKey:       "Network Key",
	NetworkKeySeq:    "Network Key Sequence",
	MeshLocalPrefix:  "Mesh Local Prefix",
	SteeringData:     "Steering Data",
	SecurityPolicy:   "Security Policy",
	ActiveTimestamp:  "Active Timestamp",
	PendingTimestamp: "Pending Timestamp",
	DelayTimer:       "Delay Timer",
	ChannelMask:      "Channel Mask",
	WakeUpChannel:    "Wake-up Channel",
}

// TypeName returns a human readable name for a MeshCoP TLV type, or an empty string if the type has none.
func TypeName(tlvType uint8) string {
	return typeNames[tlvType]
}
