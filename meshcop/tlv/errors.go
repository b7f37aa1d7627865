/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"errors"
	"fmt"
)

// TLV errors.
var (
	ErrBufferDecodeTooShort            = errors.New("buffer too short to decode TLV")
	ErrBufferDecodeUnexpectedTlvLength = errors.New("unexpected TLV length")
	ErrBufferEncodeTooShort            = errors.New("buffer too short to encode TLV")
	ErrBufferMaxLength                 = errors.New("maximum length exceeded")
	ErrBufferWrongType                 = errors.New("unexpected TLV type")
	ErrHex                             = errors.New("invalid hex string")
)

// UnexpectedLengthError reports a record whose declared length differs from the constant length of its type.
type UnexpectedLengthError struct {
	Expected int
	Found    int
}

func (e *UnexpectedLengthError) Error() string {
	return fmt.Sprintf("unexpected TLV length: expected %d, found %d", e.Expected, e.Found)
}

// Is makes UnexpectedLengthError match ErrBufferDecodeUnexpectedTlvLength.
func (e *UnexpectedLengthError) Is(target error) bool {
	return target == ErrBufferDecodeUnexpectedTlvLength
}

// MaxLengthError reports a value or buffer that exceeds a hard limit.
type MaxLengthError struct {
	What  string
	Max   int
	Found int
}

func (e *MaxLengthError) Error() string {
	return fmt.Sprintf("%s exceeds maximum length: max %d, found %d", e.What, e.Max, e.Found)
}

// Is makes MaxLengthError match ErrBufferMaxLength.
func (e *MaxLengthError) Is(target error) bool {
	return target == ErrBufferMaxLength
}

func hexError(err error) error {
	return fmt.Errorf("%w: %v", ErrHex, err)
}
