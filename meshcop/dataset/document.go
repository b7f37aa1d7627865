/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dataset

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/twine-rs/twine/meshcop/radio"
	"github.com/twine-rs/twine/meshcop/tlv"
	"go.uber.org/multierr"
)

// TimestampDocument is the editable form of a Timestamp.
type TimestampDocument struct {
	Seconds       uint64 `yaml:"seconds"`
	Ticks         uint16 `yaml:"ticks,omitempty"`
	Authoritative bool   `yaml:"authoritative,omitempty"`
}

// Document is the human editable form of a dataset, meant for YAML files.
// Every field is optional. Records Document has no field for are kept as hex in Unknown.
type Document struct {
	ActiveTimestamp   *TimestampDocument `yaml:"active_timestamp,omitempty"`
	PendingTimestamp  *TimestampDocument `yaml:"pending_timestamp,omitempty"`
	DelayTimer        *uint32            `yaml:"delay_timer_ms,omitempty"`
	Channel           *uint16            `yaml:"channel,omitempty"`
	ChannelPage       uint8              `yaml:"channel_page,omitempty"`
	WakeUpChannel     *uint16            `yaml:"wake_up_channel,omitempty"`
	WakeUpChannelPage uint8              `yaml:"wake_up_channel_page,omitempty"`
	ChannelMask       string             `yaml:"channel_mask,omitempty"`
	ExtendedPanId     string             `yaml:"extended_pan_id,omitempty"`
	MeshLocalPrefix   string             `yaml:"mesh_local_prefix,omitempty"`
	NetworkKey        string             `yaml:"network_key,omitempty"`
	NetworkName       string             `yaml:"network_name,omitempty"`
	PanId             string             `yaml:"pan_id,omitempty"`
	Pskc              string             `yaml:"pskc,omitempty"`
	SecurityPolicy    string             `yaml:"security_policy,omitempty"`
	SteeringData      string             `yaml:"steering_data,omitempty"`
	Unknown           []string           `yaml:"unknown,omitempty"`
}

func timestampDocument(t Timestamp) *TimestampDocument {
	return &TimestampDocument{Seconds: t.Seconds(), Ticks: t.Ticks(), Authoritative: t.Authoritative()}
}

func (t *TimestampDocument) timestamp() Timestamp {
	return NewTimestamp(t.Seconds, t.Ticks, t.Authoritative)
}

// Document returns the editable form of d. Malformed known records are kept in Unknown.
func (d *OperationalDataset) Document() Document {
	var doc Document
	for _, item := range d.Items() {
		switch v := item.Value.(type) {
		case ActiveTimestamp:
			doc.ActiveTimestamp = timestampDocument(v.Timestamp)
		case PendingTimestamp:
			doc.PendingTimestamp = timestampDocument(v.Timestamp)
		case DelayTimer:
			ms := uint32(v)
			doc.DelayTimer = &ms
		case radio.Channel:
			number := v.Number
			doc.Channel = &number
			doc.ChannelPage = v.Page
		case radio.WakeUpChannel:
			number := v.Number
			doc.WakeUpChannel = &number
			doc.WakeUpChannelPage = v.Page
		case radio.ChannelMask:
			doc.ChannelMask = v.String()
		case ExtendedPanId:
			doc.ExtendedPanId = v.String()
		case MeshLocalPrefix:
			doc.MeshLocalPrefix = v.String()
		case NetworkKey:
			doc.NetworkKey = v.String()
		case NetworkName:
			doc.NetworkName = v.String()
		case radio.PanId:
			doc.PanId = v.String()
		case Pskc:
			doc.Pskc = v.String()
		case SecurityPolicy:
			doc.SecurityPolicy = v.String()
		case SteeringData:
			doc.SteeringData = v.String()
		case tlv.Element:
			wire, _ := tlv.Wire(v)
			doc.Unknown = append(doc.Unknown, hex.EncodeToString(wire))
		}
	}
	return doc
}

// FromDocument builds a dataset from its editable form. Records are laid out in a fixed order,
// so a dataset in that order survives Document and FromDocument byte for byte.
// Every invalid field is reported.
func FromDocument(doc Document) (*OperationalDataset, error) {
	var values []tlv.Value
	var errs error
	add := func(field string, v tlv.Value, err error) {
		if err != nil {
			errs = multierr.Append(errs, errors.Wrap(err, field))
			return
		}
		values = append(values, v)
	}

	if doc.ActiveTimestamp != nil {
		add("active_timestamp", ActiveTimestamp{doc.ActiveTimestamp.timestamp()}, nil)
	}
	if doc.Channel != nil {
		add("channel", radio.NewChannel(doc.ChannelPage, *doc.Channel), nil)
	}
	if doc.WakeUpChannel != nil {
		add("wake_up_channel", radio.WakeUpChannel{Channel: radio.NewChannel(doc.WakeUpChannelPage, *doc.WakeUpChannel)}, nil)
	}
	if doc.ChannelMask != "" {
		v, err := radio.ParseChannelMask(doc.ChannelMask)
		add("channel_mask", v, err)
	}
	if doc.ExtendedPanId != "" {
		v, err := ParseExtendedPanId(doc.ExtendedPanId)
		add("extended_pan_id", v, err)
	}
	if doc.MeshLocalPrefix != "" {
		v, err := ParseMeshLocalPrefix(doc.MeshLocalPrefix)
		add("mesh_local_prefix", v, err)
	}
	if doc.NetworkKey != "" {
		v, err := ParseNetworkKey(doc.NetworkKey)
		add("network_key", v, err)
	}
	if doc.NetworkName != "" {
		v, err := ParseNetworkName(doc.NetworkName)
		add("network_name", v, err)
	}
	if doc.PanId != "" {
		v, err := radio.ParsePanId(doc.PanId)
		add("pan_id", v, err)
	}
	if doc.Pskc != "" {
		v, err := ParsePskc(doc.Pskc)
		add("pskc", v, err)
	}
	if doc.SecurityPolicy != "" {
		v, err := ParseSecurityPolicy(doc.SecurityPolicy)
		add("security_policy", v, err)
	}
	if doc.PendingTimestamp != nil {
		add("pending_timestamp", PendingTimestamp{doc.PendingTimestamp.timestamp()}, nil)
	}
	if doc.DelayTimer != nil {
		add("delay_timer_ms", DelayTimer(*doc.DelayTimer), nil)
	}
	if doc.SteeringData != "" {
		filter, err := hex.DecodeString(doc.SteeringData)
		if err != nil {
			add("steering_data", nil, errors.Wrap(tlv.ErrHex, err.Error()))
		} else {
			v, err := NewSteeringData(filter)
			add("steering_data", v, err)
		}
	}
	for _, record := range doc.Unknown {
		wire, err := hex.DecodeString(record)
		if err != nil {
			add("unknown", nil, errors.Wrap(tlv.ErrHex, err.Error()))
			continue
		}
		e, n, err := tlv.DecodeElement(wire)
		if err == nil && n != len(wire) {
			err = errors.Errorf("%d trailing bytes after record", len(wire)-n)
		}
		add("unknown", e, err)
	}
	if errs != nil {
		return nil, errs
	}

	d := New()
	for _, v := range values {
		if _, err := d.tlvs.Push(v); err != nil {
			return nil, errors.Wrapf(err, "add %s", tlv.TypeName(v.TlvType()))
		}
	}
	return d, nil
}
