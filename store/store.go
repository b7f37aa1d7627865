/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package store persists named operational datasets.
package store

import (
	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
	"github.com/twine-rs/twine/core"
	"github.com/twine-rs/twine/meshcop/dataset"
)

// Store errors.
var (
	ErrNotFound       = errors.New("dataset not found")
	ErrEmptyName      = errors.New("dataset name is empty")
	ErrUnknownBackend = errors.New("unknown store backend")
)

// Entry describes one stored dataset.
type Entry struct {
	Name        string
	Size        int
	Fingerprint uint64
}

// Store is a persistent map from names to encoded dataset TLVs.
type Store interface {
	// Get returns a copy of the TLVs stored under name, or nil if there are none.
	Get(name string) ([]byte, error)
	// Put stores tlvs under name, replacing any previous value.
	Put(name string, tlvs []byte) error
	// Remove erases name. Removing an absent name is not an error.
	Remove(name string) error
	// List returns every entry ordered by name.
	List() ([]Entry, error)
	Close() error
}

func fingerprint(tlvs []byte) uint64 {
	return xxhash.Sum64(tlvs)
}

// Open opens the store of the given backend ("bolt" or "sqlite") at path.
func Open(backend string, path string) (Store, error) {
	var s Store
	var err error
	switch backend {
	case "bolt":
		s, err = NewBoltStore(path)
	case "sqlite":
		s, err = NewSqliteStore(path)
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", backend)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open %s store at %s", backend, path)
	}
	return s, nil
}

// OpenConfigured opens the store named by store.backend and store.path.
func OpenConfigured() (Store, error) {
	backend := core.GetConfigStringDefault("store.backend", "bolt")
	path := core.GetConfigStringDefault("store.path", "twine.db")
	core.LogDebug("Store", "Opening "+backend+" store at "+path)
	return Open(backend, path)
}

// PutDataset stores the encoded dataset under name.
func PutDataset(s Store, name string, d *dataset.OperationalDataset) error {
	if name == "" {
		return ErrEmptyName
	}
	return errors.Wrapf(s.Put(name, d.Bytes()), "put dataset %s", name)
}

// GetDataset loads the dataset stored under name.
func GetDataset(s Store, name string) (*dataset.OperationalDataset, error) {
	tlvs, err := s.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "get dataset %s", name)
	}
	if tlvs == nil {
		return nil, errors.Wrapf(ErrNotFound, "%s", name)
	}
	d, err := dataset.FromBytes(tlvs)
	if err != nil {
		return nil, errors.Wrapf(err, "decode dataset %s", name)
	}
	return d, nil
}
