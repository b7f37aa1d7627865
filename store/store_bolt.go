/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package store

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/twine-rs/twine/core"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/multierr"
)

var BoltBucket = []byte("datasets")
var ErrBoltNoBucket = errors.New("no bucket in bolt")

// BoltStore keeps every dataset in a single bolt bucket.
// The key is the dataset name and the value is the raw TLVs.
type BoltStore struct {
	db   *bolt.DB
	path string
	wmut sync.Mutex
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(BoltBucket)
		return err
	})
	if err != nil {
		return nil, multierr.Append(err, db.Close())
	}

	return &BoltStore{db: db, path: path}, nil
}

func (s *BoltStore) String() string {
	return "BoltStore(" + s.path + ")"
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) Get(name string) (tlvs []byte, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(BoltBucket)
		if bucket == nil {
			return ErrBoltNoBucket
		}
		if v := bucket.Get([]byte(name)); v != nil {
			tlvs = make([]byte, len(v))
			copy(tlvs, v)
		}
		return nil
	})
	return
}

func (s *BoltStore) Put(name string, tlvs []byte) error {
	if name == "" {
		return ErrEmptyName
	}

	s.wmut.Lock()
	defer s.wmut.Unlock()

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(BoltBucket)
		if bucket == nil {
			return ErrBoltNoBucket
		}
		return bucket.Put([]byte(name), tlvs)
	})
	if err == nil {
		core.LogDebug(s, "Stored name="+name)
	}
	return err
}

func (s *BoltStore) Remove(name string) error {
	s.wmut.Lock()
	defer s.wmut.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(BoltBucket)
		if bucket == nil {
			return ErrBoltNoBucket
		}
		return bucket.Delete([]byte(name))
	})
}

// List walks the bucket in key order, which is already sorted by name.
func (s *BoltStore) List() (entries []Entry, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(BoltBucket)
		if bucket == nil {
			return ErrBoltNoBucket
		}
		return bucket.ForEach(func(k, v []byte) error {
			entries = append(entries, Entry{
				Name:        string(k),
				Size:        len(v),
				Fingerprint: fingerprint(v),
			})
			return nil
		})
	})
	return
}
