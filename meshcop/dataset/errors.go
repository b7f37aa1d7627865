/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package dataset implements the Thread operational dataset and the MeshCoP TLVs it is made of.
package dataset

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"github.com/twine-rs/twine/meshcop/tlv"
)

// Dataset errors.
var (
	ErrIncompleteSecurityPolicy = errors.New("security policy builder has unset fields")
	ErrUnknownVersionThreshold  = errors.New("unknown version threshold")
	ErrInvalidSecurityPolicy    = errors.New("invalid security policy")
	ErrInvalidNetworkName       = errors.New("network name contains NUL")
)

// parseHexInto decodes at most 2*len(dst) hex digits into dst, right aligned.
func parseHexInto(dst []byte, s string, what string) error {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) == 0 {
		return errors.Wrapf(tlv.ErrHex, "empty %s", what)
	}
	if len(s) > 2*len(dst) {
		return errors.Wrapf(&tlv.MaxLengthError{What: what, Max: 2 * len(dst), Found: len(s)},
			"invalid %s", what)
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}

	var buf [32]byte
	decoded := buf[:len(s)/2]
	if _, err := hex.Decode(decoded, []byte(s)); err != nil {
		return errors.Wrapf(tlv.ErrHex, "invalid %s: %v", what, err)
	}
	clear(dst)
	copy(dst[len(dst)-len(decoded):], decoded)
	return nil
}
