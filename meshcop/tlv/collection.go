/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import (
	"encoding/hex"
)

// Collection is a fixed-capacity buffer of back-to-back records.
//
// The buffer is allocated once. Records start at offset 0 and the bytes after
// the last record are zero. A record whose length field reads 0 marks the end
// of the data, so zero-length records cannot be stored.
type Collection struct {
	buf []byte
}

///////////////
// Constructors
///////////////

// NewCollection creates an empty collection with the given capacity.
func NewCollection(capacity int) *Collection {
	return &Collection{buf: make([]byte, capacity)}
}

// NewCollectionFromBytes creates a collection of the given capacity holding a copy of b.
// The bytes are not validated.
func NewCollectionFromBytes(capacity int, b []byte) (*Collection, error) {
	if len(b) > capacity {
		return nil, &MaxLengthError{What: "TLV collection", Max: capacity, Found: len(b)}
	}
	c := NewCollection(capacity)
	copy(c.buf, b)
	return c, nil
}

// ParseCollection creates a collection of the given capacity from a hex string.
func ParseCollection(capacity int, s string) (*Collection, error) {
	if len(s)%2 != 0 {
		return nil, hexError(hex.ErrLength)
	}
	if len(s)/2 > capacity {
		return nil, &MaxLengthError{What: "TLV collection", Max: capacity, Found: len(s) / 2}
	}
	c := NewCollection(capacity)
	if _, err := hex.Decode(c.buf, []byte(s)); err != nil {
		return nil, hexError(err)
	}
	return c, nil
}

// Clone returns a deep copy of the collection.
func (c *Collection) Clone() *Collection {
	clone := NewCollection(len(c.buf))
	copy(clone.buf, c.buf)
	return clone
}

//////////
// Getters
//////////

// Capacity returns the size of the backing buffer.
func (c *Collection) Capacity() int {
	return len(c.buf)
}

// next returns the end offset of the record starting at pos, or -1 if no record starts there.
func (c *Collection) next(pos int) int {
	if pos+2 > len(c.buf) {
		return -1
	}
	length, n, err := DecodeLength(c.buf[pos+1:])
	if err != nil || length == 0 {
		return -1
	}
	end := pos + 1 + n + length
	if end > len(c.buf) {
		return -1
	}
	return end
}

// Len returns the logical length: the number of bytes covered by complete records.
func (c *Collection) Len() int {
	pos := 0
	for pos < len(c.buf) {
		end := c.next(pos)
		if end < 0 {
			break
		}
		pos = end
	}
	return pos
}

// Count returns the number of records.
func (c *Collection) Count() int {
	count := 0
	pos := 0
	for pos < len(c.buf) {
		end := c.next(pos)
		if end < 0 {
			break
		}
		count++
		pos = end
	}
	return count
}

// IsEmpty returns whether the collection holds no records.
func (c *Collection) IsEmpty() bool {
	return c.next(0) < 0
}

// Find returns the byte range of the first record of the given type.
func (c *Collection) Find(tlvType uint8) (start int, end int, ok bool) {
	pos := 0
	for pos < len(c.buf) {
		end := c.next(pos)
		if end < 0 {
			break
		}
		if c.buf[pos] == tlvType {
			return pos, end, true
		}
		pos = end
	}
	return 0, 0, false
}

// Contains returns whether a record of the given type is present.
func (c *Collection) Contains(tlvType uint8) bool {
	_, _, ok := c.Find(tlvType)
	return ok
}

// Record returns a copy of the first record of the given type, header included, or nil.
func (c *Collection) Record(tlvType uint8) []byte {
	start, end, ok := c.Find(tlvType)
	if !ok {
		return nil
	}
	record := make([]byte, end-start)
	copy(record, c.buf[start:end])
	return record
}

// Elements returns copies of every record in order.
func (c *Collection) Elements() []Element {
	var elements []Element
	pos := 0
	for pos < len(c.buf) {
		end := c.next(pos)
		if end < 0 {
			break
		}
		e, _, err := DecodeElement(c.buf[pos:end])
		if err != nil {
			break
		}
		elements = append(elements, e)
		pos = end
	}
	return elements
}

// Bytes returns a copy of the logical contents.
func (c *Collection) Bytes() []byte {
	n := c.Len()
	b := make([]byte, n)
	copy(b, c.buf[:n])
	return b
}

// Buffer returns a copy of the whole backing buffer, unused tail included.
func (c *Collection) Buffer() []byte {
	b := make([]byte, len(c.buf))
	copy(b, c.buf)
	return b
}

// String returns the logical contents as lowercase hex.
func (c *Collection) String() string {
	return hex.EncodeToString(c.buf[:c.Len()])
}

// DecodeFrom decodes the first record of T's type in c.
func DecodeFrom[T any, PT ValueDecoder[T]](c *Collection) (T, bool) {
	start, end, ok := c.Find(TypeOf[T, PT]())
	if !ok {
		var zero T
		return zero, false
	}
	return DecodeUnchecked[T, PT](c.buf[start:end]), true
}

///////////
// Mutators
///////////

// Push appends v after the last record and returns the number of bytes written.
// The collection is left unchanged on error.
func (c *Collection) Push(v Value) (int, error) {
	length := v.TlvLength()
	if length > MaxLength {
		return 0, &MaxLengthError{What: "TLV value", Max: MaxLength, Found: length}
	}
	pos := c.Len()
	size := EncodedSize(length)
	if pos+size > len(c.buf) {
		return 0, &MaxLengthError{What: "TLV collection", Max: len(c.buf), Found: pos + size}
	}

	n, err := EncodeTlv(c.buf[pos:pos+size], v)
	if err != nil {
		clear(c.buf[pos : pos+size])
		return 0, err
	}
	return n, nil
}

// Remove erases the first record of the given type and returns whether a record was removed.
// Following records shift left and the freed tail is zeroed.
func (c *Collection) Remove(tlvType uint8) bool {
	start, end, ok := c.Find(tlvType)
	if !ok {
		return false
	}
	c.erase(start, end)
	return true
}

func (c *Collection) erase(start int, end int) {
	copy(c.buf[start:], c.buf[end:])
	clear(c.buf[len(c.buf)-(end-start):])
}

// Replace overwrites the first record of v's type with v. It does nothing if no such record exists.
//
// A constant-length value is rewritten at the same offset. Any other value is
// removed and pushed again, so it moves to the end of the collection.
// The collection is left unchanged on error.
func (c *Collection) Replace(v Value) error {
	start, end, ok := c.Find(v.TlvType())
	if !ok {
		return nil
	}

	length := v.TlvLength()
	if length > MaxLength {
		return &MaxLengthError{What: "TLV value", Max: MaxLength, Found: length}
	}
	size := EncodedSize(length)

	if _, constant := v.(ConstantLength); constant && size == end-start {
		scratch := make([]byte, size)
		if _, err := EncodeTlv(scratch, v); err != nil {
			return err
		}
		copy(c.buf[start:end], scratch)
		return nil
	}

	if total := c.Len() - (end - start) + size; total > len(c.buf) {
		return &MaxLengthError{What: "TLV collection", Max: len(c.buf), Found: total}
	}
	saved := c.Clone()
	c.erase(start, end)
	if _, err := c.Push(v); err != nil {
		copy(c.buf, saved.buf)
		return err
	}
	return nil
}

// Clear removes every record.
func (c *Collection) Clear() {
	clear(c.buf)
}
