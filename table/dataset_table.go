/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package table tracks the operational datasets of known Thread networks.
package table

import (
	"sort"
	"time"

	"github.com/cespare/xxhash"
	"github.com/cornelk/hashmap"
	"github.com/pkg/errors"
	"github.com/twine-rs/twine/core"
	"github.com/twine-rs/twine/meshcop/dataset"
)

// Table errors.
var (
	ErrNoExtendedPanId = errors.New("dataset has no extended PAN ID")
	ErrStaleDataset    = errors.New("dataset is older than the stored one")
	ErrTableFull       = errors.New("dataset table is full")
)

// Fingerprint returns the xxhash of the encoded dataset.
func Fingerprint(d *dataset.OperationalDataset) uint64 {
	return xxhash.Sum64(d.Bytes())
}

// DatasetEntry is the dataset stored for one network.
type DatasetEntry struct {
	ExtendedPanId dataset.ExtendedPanId
	Fingerprint   uint64
	Updated       time.Time
	dataset       *dataset.OperationalDataset
}

// Dataset returns a copy of the stored dataset.
func (e *DatasetEntry) Dataset() *dataset.OperationalDataset {
	return e.dataset.Clone()
}

// DatasetTable holds the latest dataset of each network, keyed by Extended PAN ID.
// It is safe for concurrent use.
type DatasetTable struct {
	entries    *hashmap.HashMap
	maxEntries int
}

// NewDatasetTable creates an empty table bounded by the configured table.max_datasets.
func NewDatasetTable() *DatasetTable {
	return &DatasetTable{
		entries:    hashmap.New(32),
		maxEntries: maxDatasets,
	}
}

func (t *DatasetTable) String() string {
	return "DatasetTable"
}

func (t *DatasetTable) get(key string) (*DatasetEntry, bool) {
	value, ok := t.entries.GetStringKey(key)
	if !ok {
		return nil, false
	}
	return value.(*DatasetEntry), true
}

// isStale returns whether incoming carries an active timestamp older than the stored one.
// Datasets without an active timestamp are never stale.
func isStale(incoming, stored *dataset.OperationalDataset) bool {
	in, ok := incoming.ActiveTimestamp()
	if !ok {
		return false
	}
	current, ok := stored.ActiveTimestamp()
	if !ok {
		return false
	}
	return in.Compare(current) < 0
}

// Insert stores a copy of d under its Extended PAN ID and returns whether the table changed.
// Inserting identical content again is a no-op.
func (t *DatasetTable) Insert(d *dataset.OperationalDataset) (bool, error) {
	xpan, ok := d.ExtendedPanId()
	if !ok {
		return false, ErrNoExtendedPanId
	}
	key := xpan.String()
	entry := &DatasetEntry{
		ExtendedPanId: xpan,
		Fingerprint:   Fingerprint(d),
		Updated:       time.Now(),
		dataset:       d.Clone(),
	}

	for {
		existing, ok := t.get(key)
		if !ok {
			if t.maxEntries > 0 && t.entries.Len() >= t.maxEntries {
				return false, errors.Wrapf(ErrTableFull, "insert xpan=%s", key)
			}
			if _, loaded := t.entries.GetOrInsert(key, entry); loaded {
				continue
			}
			// Racing inserts of new networks can all pass the check above.
			if t.maxEntries > 0 && t.entries.Len() > t.maxEntries {
				t.entries.Del(key)
				return false, errors.Wrapf(ErrTableFull, "insert xpan=%s", key)
			}
			addToMeasurement(MeasurementInserted, 1)
			core.LogDebug(t, "Added dataset for xpan="+key)
			return true, nil
		}

		if isStale(d, existing.dataset) {
			addToMeasurement(MeasurementStale, 1)
			core.LogInfo(t, "Refused stale dataset for xpan="+key)
			return false, errors.Wrapf(ErrStaleDataset, "xpan=%s", key)
		}
		if existing.Fingerprint == entry.Fingerprint {
			core.LogTrace(t, "Dataset for xpan="+key+" unchanged")
			return false, nil
		}
		if t.entries.Cas(key, existing, entry) {
			addToMeasurement(MeasurementUpdated, 1)
			core.LogDebug(t, "Updated dataset for xpan="+key)
			return true, nil
		}
	}
}

// Get returns a copy of the dataset stored for xpan.
func (t *DatasetTable) Get(xpan dataset.ExtendedPanId) (*dataset.OperationalDataset, bool) {
	entry, ok := t.get(xpan.String())
	if !ok {
		return nil, false
	}
	return entry.Dataset(), true
}

// Remove erases the dataset stored for xpan and returns whether there was one.
func (t *DatasetTable) Remove(xpan dataset.ExtendedPanId) bool {
	key := xpan.String()
	if _, ok := t.get(key); !ok {
		return false
	}
	t.entries.Del(key)
	addToMeasurement(MeasurementRemoved, 1)
	core.LogDebug(t, "Removed dataset for xpan="+key)
	return true
}

// Len returns the number of networks in the table.
func (t *DatasetTable) Len() int {
	return t.entries.Len()
}

// Entries returns every entry ordered by Extended PAN ID.
func (t *DatasetTable) Entries() []*DatasetEntry {
	entries := make([]*DatasetEntry, 0, t.entries.Len())
	for kv := range t.entries.Iter() {
		entries = append(entries, kv.Value.(*DatasetEntry))
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ExtendedPanId.Uint64() < entries[j].ExtendedPanId.Uint64()
	})
	return entries
}
