/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dataset

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/twine-rs/twine/meshcop/radio"
	"github.com/twine-rs/twine/meshcop/tlv"
	"go.uber.org/multierr"
)

// MaxSize is the largest encoded operational dataset.
const MaxSize = 254

// DefaultNamePrefix starts the name of generated networks.
const DefaultNamePrefix = "Twine"

// OperationalDataset is an active or pending Thread operational dataset.
type OperationalDataset struct {
	tlvs *tlv.Collection
}

///////////////
// Constructors
///////////////

// New returns an empty dataset.
func New() *OperationalDataset {
	return &OperationalDataset{tlvs: tlv.NewCollection(MaxSize)}
}

// FromBytes returns a dataset holding a copy of the encoded TLVs in b. The records are not validated.
func FromBytes(b []byte) (*OperationalDataset, error) {
	c, err := tlv.NewCollectionFromBytes(MaxSize, b)
	if err != nil {
		return nil, err
	}
	return &OperationalDataset{tlvs: c}, nil
}

// Parse returns the dataset encoded by a hex string, as printed by "dataset active -x". The records are not validated.
func Parse(s string) (*OperationalDataset, error) {
	c, err := tlv.ParseCollection(MaxSize, strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &OperationalDataset{tlvs: c}, nil
}

// RandomOptions tunes Random.
type RandomOptions struct {
	// NamePrefix is followed by "-" and the PAN ID in hex. Defaults to DefaultNamePrefix.
	NamePrefix string
	// Channels restricts the channel choice. Defaults to every page 0 channel.
	Channels []uint16
}

// Random returns a complete active dataset with fresh credentials.
func Random(opts RandomOptions) (*OperationalDataset, error) {
	prefix := opts.NamePrefix
	if prefix == "" {
		prefix = DefaultNamePrefix
	}
	panId := radio.RandomPanId()
	name, err := ParseNetworkName(fmt.Sprintf("%s-%x", prefix, uint16(panId)))
	if err != nil {
		return nil, errors.Wrap(err, "network name prefix too long")
	}

	d := New()
	values := []tlv.Value{
		ActiveTimestamp{Now(false)},
		radio.RandomChannelFrom(opts.Channels),
		radio.DefaultChannelMask(),
		RandomExtendedPanId(),
		RandomULA(),
		RandomNetworkKey(),
		name,
		panId,
		RandomPskc(),
		DefaultSecurityPolicy(),
	}
	for _, v := range values {
		if _, err := d.tlvs.Push(v); err != nil {
			return nil, errors.Wrapf(err, "add %s", tlv.TypeName(v.TlvType()))
		}
	}
	return d, nil
}

// Clone returns a deep copy of the dataset.
func (d *OperationalDataset) Clone() *OperationalDataset {
	return &OperationalDataset{tlvs: d.tlvs.Clone()}
}

//////////
// Getters
//////////

func get[T any, PT tlv.ValueDecoder[T]](d *OperationalDataset) (T, bool) {
	return tlv.DecodeFrom[T, PT](d.tlvs)
}

func (d *OperationalDataset) ActiveTimestamp() (Timestamp, bool) {
	v, ok := get[ActiveTimestamp](d)
	return v.Timestamp, ok
}

func (d *OperationalDataset) PendingTimestamp() (Timestamp, bool) {
	v, ok := get[PendingTimestamp](d)
	return v.Timestamp, ok
}

func (d *OperationalDataset) DelayTimer() (DelayTimer, bool) {
	return get[DelayTimer](d)
}

func (d *OperationalDataset) Channel() (radio.Channel, bool) {
	return get[radio.Channel](d)
}

func (d *OperationalDataset) WakeUpChannel() (radio.Channel, bool) {
	v, ok := get[radio.WakeUpChannel](d)
	return v.Channel, ok
}

func (d *OperationalDataset) PanId() (radio.PanId, bool) {
	return get[radio.PanId](d)
}

func (d *OperationalDataset) ChannelMask() (radio.ChannelMask, bool) {
	return get[radio.ChannelMask](d)
}

func (d *OperationalDataset) ExtendedPanId() (ExtendedPanId, bool) {
	return get[ExtendedPanId](d)
}

func (d *OperationalDataset) NetworkName() (NetworkName, bool) {
	return get[NetworkName](d)
}

func (d *OperationalDataset) Pskc() (Pskc, bool) {
	return get[Pskc](d)
}

func (d *OperationalDataset) NetworkKey() (NetworkKey, bool) {
	return get[NetworkKey](d)
}

func (d *OperationalDataset) MeshLocalPrefix() (MeshLocalPrefix, bool) {
	return get[MeshLocalPrefix](d)
}

func (d *OperationalDataset) SecurityPolicy() (SecurityPolicy, bool) {
	return get[SecurityPolicy](d)
}

// Contains returns whether a record of the given type is present.
func (d *OperationalDataset) Contains(tlvType uint8) bool {
	return d.tlvs.Contains(tlvType)
}

// Components returns the known fields present in the dataset.
func (d *OperationalDataset) Components() Components {
	var c Components
	for _, e := range d.tlvs.Elements() {
		c |= componentByType[e.Type]
	}
	return c
}

// IsActiveComplete returns whether every field of an active dataset is present.
func (d *OperationalDataset) IsActiveComplete() bool {
	return d.Components().Has(RequiredActive)
}

// Len returns the encoded size.
func (d *OperationalDataset) Len() int {
	return d.tlvs.Len()
}

// IsEmpty returns whether the dataset holds no records.
func (d *OperationalDataset) IsEmpty() bool {
	return d.tlvs.IsEmpty()
}

// Bytes returns a copy of the encoded TLVs.
func (d *OperationalDataset) Bytes() []byte {
	return d.tlvs.Bytes()
}

// HexString returns the encoded TLVs as lowercase hex.
func (d *OperationalDataset) HexString() string {
	return d.tlvs.String()
}

// Tlvs returns the encoded TLVs as a raw blob.
func (d *OperationalDataset) Tlvs() OperationalDatasetTlvs {
	t, _ := NewOperationalDatasetTlvs(d.tlvs.Bytes())
	return t
}

// Items decodes every record in order.
func (d *OperationalDataset) Items() []Item {
	elements := d.tlvs.Elements()
	items := make([]Item, 0, len(elements))
	for _, e := range elements {
		items = append(items, decodeItem(e))
	}
	return items
}

// String renders one item per line.
func (d *OperationalDataset) String() string {
	var sb strings.Builder
	for _, item := range d.Items() {
		sb.WriteString(item.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Validate checks every known record for a well-formed header and the expected length.
func (d *OperationalDataset) Validate() error {
	var errs []error
	for _, e := range d.tlvs.Elements() {
		if err := validateElement(e); err != nil {
			errs = append(errs, errors.Wrapf(err, "%s TLV", itemName(e.Type)))
		}
	}
	return multierr.Combine(errs...)
}

//////////
// Setters
//////////

// set replaces the record of v's type, or appends v when there is none.
func (d *OperationalDataset) set(v tlv.Value) error {
	var err error
	if d.tlvs.Contains(v.TlvType()) {
		err = d.tlvs.Replace(v)
	} else {
		_, err = d.tlvs.Push(v)
	}
	return errors.Wrapf(err, "set %s", tlv.TypeName(v.TlvType()))
}

func (d *OperationalDataset) SetActiveTimestamp(t Timestamp) error {
	return d.set(ActiveTimestamp{t})
}

func (d *OperationalDataset) SetPendingTimestamp(t Timestamp) error {
	return d.set(PendingTimestamp{t})
}

func (d *OperationalDataset) SetDelayTimer(t DelayTimer) error {
	return d.set(t)
}

func (d *OperationalDataset) SetChannel(c radio.Channel) error {
	return d.set(c)
}

func (d *OperationalDataset) SetWakeUpChannel(c radio.Channel) error {
	return d.set(radio.WakeUpChannel{Channel: c})
}

func (d *OperationalDataset) SetPanId(p radio.PanId) error {
	return d.set(p)
}

func (d *OperationalDataset) SetChannelMask(m radio.ChannelMask) error {
	return d.set(m)
}

func (d *OperationalDataset) SetExtendedPanId(x ExtendedPanId) error {
	return d.set(x)
}

// SetNetworkName replaces the name. The name record moves to the end of the dataset.
func (d *OperationalDataset) SetNetworkName(n NetworkName) error {
	return d.set(n)
}

func (d *OperationalDataset) SetPskc(p Pskc) error {
	return d.set(p)
}

func (d *OperationalDataset) SetNetworkKey(k NetworkKey) error {
	return d.set(k)
}

func (d *OperationalDataset) SetMeshLocalPrefix(m MeshLocalPrefix) error {
	return d.set(m)
}

func (d *OperationalDataset) SetSecurityPolicy(p SecurityPolicy) error {
	return d.set(p)
}

// Remove erases the record of the given type and returns whether one was present.
func (d *OperationalDataset) Remove(tlvType uint8) bool {
	return d.tlvs.Remove(tlvType)
}
