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
	"github.com/twine-rs/twine/meshcop/tlv"
)

// OperationalDatasetTlvs is an encoded dataset as exchanged with a device, without any interpretation.
type OperationalDatasetTlvs struct {
	length int
	data   [MaxSize]byte
}

// NewOperationalDatasetTlvs copies b. It fails if b is longer than MaxSize.
func NewOperationalDatasetTlvs(b []byte) (OperationalDatasetTlvs, error) {
	var t OperationalDatasetTlvs
	if len(b) > MaxSize {
		return t, &tlv.MaxLengthError{What: "operational dataset TLVs", Max: MaxSize, Found: len(b)}
	}
	t.length = copy(t.data[:], b)
	return t, nil
}

// ParseOperationalDatasetTlvs decodes a hex string.
func ParseOperationalDatasetTlvs(s string) (OperationalDatasetTlvs, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return OperationalDatasetTlvs{}, errors.Wrap(tlv.ErrHex, err.Error())
	}
	return NewOperationalDatasetTlvs(b)
}

// Len returns the number of bytes held.
func (t OperationalDatasetTlvs) Len() int {
	return t.length
}

// Bytes returns a copy of the held bytes.
func (t OperationalDatasetTlvs) Bytes() []byte {
	return append([]byte(nil), t.data[:t.length]...)
}

// Dataset interprets the bytes as an operational dataset.
func (t OperationalDatasetTlvs) Dataset() *OperationalDataset {
	d, _ := FromBytes(t.data[:t.length])
	return d
}

func (t OperationalDatasetTlvs) String() string {
	return hex.EncodeToString(t.data[:t.length])
}
