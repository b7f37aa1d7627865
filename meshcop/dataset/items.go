/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dataset

import (
	"encoding/hex"
	"fmt"

	"github.com/twine-rs/twine/meshcop/radio"
	"github.com/twine-rs/twine/meshcop/tlv"
)

// Item is one decoded dataset record. Value holds the typed value, or the raw tlv.Element for unknown or malformed records.
type Item struct {
	Type  uint8
	Value tlv.Value
}

// Known reports whether the record type was recognized.
func (i Item) Known() bool {
	_, raw := i.Value.(tlv.Element)
	return !raw
}

func (i Item) String() string {
	switch v := i.Value.(type) {
	case ActiveTimestamp:
		return fmt.Sprintf("%s: %d", itemName(i.Type), v.Seconds())
	case PendingTimestamp:
		return fmt.Sprintf("%s: %d", itemName(i.Type), v.Seconds())
	case radio.Channel:
		return fmt.Sprintf("%s: %d", itemName(i.Type), v.Number)
	case radio.WakeUpChannel:
		return fmt.Sprintf("%s: %d", itemName(i.Type), v.Number)
	case tlv.Element:
		if name, ok := itemNames[v.Type]; ok {
			return fmt.Sprintf("%s: invalid %s", name, hex.EncodeToString(v.Value))
		}
		return fmt.Sprintf("Unknown TLV (0x%02x): %s", v.Type, hex.EncodeToString(v.Value))
	case fmt.Stringer:
		return fmt.Sprintf("%s: %s", itemName(i.Type), v)
	}
	return fmt.Sprintf("%s: %v", itemName(i.Type), i.Value)
}

var itemNames = map[uint8]string{
	tlv.ActiveTimestamp:  "Active Timestamp",
	tlv.PendingTimestamp: "Pending Timestamp",
	tlv.DelayTimer:       "Delay Timer",
	tlv.Channel:          "Channel",
	tlv.WakeUpChannel:    "Wake-up Channel",
	tlv.ChannelMask:      "Channel Mask",
	tlv.ExtendedPanId:    "Ext PAN ID",
	tlv.MeshLocalPrefix:  "Mesh Local Prefix",
	tlv.NetworkKey:       "Network Key",
	tlv.NetworkName:      "Network Name",
	tlv.PanId:            "PAN ID",
	tlv.Pskc:             "PSKc",
	tlv.SecurityPolicy:   "Security Policy",
	tlv.SteeringData:     "Steering Data",
}

func itemName(tlvType uint8) string {
	if name, ok := itemNames[tlvType]; ok {
		return name
	}
	return fmt.Sprintf("TLV 0x%02x", tlvType)
}

func decodeAs[T tlv.Value, PT tlv.ValueDecoder[T]](value []byte) tlv.Value {
	var v T
	PT(&v).DecodeValue(value)
	return v
}

var itemDecoders = map[uint8]func([]byte) tlv.Value{
	tlv.ActiveTimestamp:  decodeAs[ActiveTimestamp],
	tlv.PendingTimestamp: decodeAs[PendingTimestamp],
	tlv.DelayTimer:       decodeAs[DelayTimer],
	tlv.Channel:          decodeAs[radio.Channel],
	tlv.WakeUpChannel:    decodeAs[radio.WakeUpChannel],
	tlv.ChannelMask:      decodeAs[radio.ChannelMask],
	tlv.ExtendedPanId:    decodeAs[ExtendedPanId],
	tlv.MeshLocalPrefix:  decodeAs[MeshLocalPrefix],
	tlv.NetworkKey:       decodeAs[NetworkKey],
	tlv.NetworkName:      decodeAs[NetworkName],
	tlv.PanId:            decodeAs[radio.PanId],
	tlv.Pskc:             decodeAs[Pskc],
	tlv.SecurityPolicy:   decodeAs[SecurityPolicy],
	tlv.SteeringData:     decodeAs[SteeringData],
}

var constantValidators = map[uint8]func([]byte) error{
	tlv.ActiveTimestamp:  tlv.ValidateConstant[ActiveTimestamp],
	tlv.PendingTimestamp: tlv.ValidateConstant[PendingTimestamp],
	tlv.DelayTimer:       tlv.ValidateConstant[DelayTimer],
	tlv.Channel:          tlv.ValidateConstant[radio.Channel],
	tlv.WakeUpChannel:    tlv.ValidateConstant[radio.WakeUpChannel],
	tlv.ChannelMask:      tlv.ValidateConstant[radio.ChannelMask],
	tlv.ExtendedPanId:    tlv.ValidateConstant[ExtendedPanId],
	tlv.MeshLocalPrefix:  tlv.ValidateConstant[MeshLocalPrefix],
	tlv.NetworkKey:       tlv.ValidateConstant[NetworkKey],
	tlv.PanId:            tlv.ValidateConstant[radio.PanId],
	tlv.Pskc:             tlv.ValidateConstant[Pskc],
	tlv.SecurityPolicy:   tlv.ValidateConstant[SecurityPolicy],
}

var maxVariableLength = map[uint8]int{
	tlv.NetworkName:  MaxNetworkNameLength,
	tlv.SteeringData: MaxSteeringDataLength,
}

func decodeItem(e tlv.Element) Item {
	if decode, ok := itemDecoders[e.Type]; ok && validateElement(e) == nil {
		return Item{Type: e.Type, Value: decode(e.Value)}
	}
	return Item{Type: e.Type, Value: e}
}

func validateElement(e tlv.Element) error {
	if validate, ok := constantValidators[e.Type]; ok {
		wire, err := tlv.Wire(e)
		if err != nil {
			return err
		}
		return validate(wire)
	}
	if limit, ok := maxVariableLength[e.Type]; ok && len(e.Value) > limit {
		return &tlv.MaxLengthError{What: itemName(e.Type), Max: limit, Found: len(e.Value)}
	}
	return nil
}
