/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twine-rs/twine/core"
	"github.com/twine-rs/twine/meshcop/dataset"
	"github.com/twine-rs/twine/meshcop/radio"
	"github.com/twine-rs/twine/store"
)

var backends = []string{"bolt", "sqlite"}

func openStore(t *testing.T, backend string) store.Store {
	s, err := store.Open(backend, filepath.Join(t.TempDir(), "twine.db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, s.Close()) })
	return s
}

func TestStorePutGet(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)

			tlvs, err := s.Get("home")
			assert.NoError(t, err)
			assert.Nil(t, tlvs)

			require.NoError(t, s.Put("home", []byte{0x00, 0x03, 0x00, 0x00, 0x0f}))
			tlvs, err = s.Get("home")
			assert.NoError(t, err)
			assert.Equal(t, []byte{0x00, 0x03, 0x00, 0x00, 0x0f}, tlvs)

			// Put replaces.
			require.NoError(t, s.Put("home", []byte{0x01, 0x02, 0xb3, 0xde}))
			tlvs, err = s.Get("home")
			assert.NoError(t, err)
			assert.Equal(t, []byte{0x01, 0x02, 0xb3, 0xde}, tlvs)

			assert.ErrorIs(t, s.Put("", []byte{0x00}), store.ErrEmptyName)
		})
	}
}

func TestStoreListRemove(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			require.NoError(t, s.Put("b", []byte{0x01, 0x02, 0x12, 0x34}))
			require.NoError(t, s.Put("a", []byte{0x00, 0x03, 0x00, 0x00, 0x0b}))
			require.NoError(t, s.Put("c", []byte{0x01, 0x02, 0x56, 0x78}))

			entries, err := s.List()
			require.NoError(t, err)
			require.Len(t, entries, 3)
			assert.Equal(t, "a", entries[0].Name)
			assert.Equal(t, 5, entries[0].Size)
			assert.Equal(t, "b", entries[1].Name)
			assert.Equal(t, "c", entries[2].Name)
			assert.NotEqual(t, entries[1].Fingerprint, entries[2].Fingerprint)

			require.NoError(t, s.Remove("b"))
			require.NoError(t, s.Remove("b"))
			entries, err = s.List()
			require.NoError(t, err)
			require.Len(t, entries, 2)
			assert.Equal(t, "c", entries[1].Name)
		})
	}
}

func TestStoreFingerprintsAgree(t *testing.T) {
	tlvs := []byte{0x01, 0x02, 0xb3, 0xde}
	var fingerprints []uint64
	for _, backend := range backends {
		s := openStore(t, backend)
		require.NoError(t, s.Put("x", tlvs))
		entries, err := s.List()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		fingerprints = append(fingerprints, entries[0].Fingerprint)
	}
	assert.Equal(t, fingerprints[0], fingerprints[1])
}

func TestStoreReopen(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "twine.db")
			s, err := store.Open(backend, path)
			require.NoError(t, err)
			require.NoError(t, s.Put("home", []byte{0x01, 0x02, 0xb3, 0xde}))
			require.NoError(t, s.Close())

			s, err = store.Open(backend, path)
			require.NoError(t, err)
			defer s.Close()
			tlvs, err := s.Get("home")
			assert.NoError(t, err)
			assert.Equal(t, []byte{0x01, 0x02, 0xb3, 0xde}, tlvs)
		})
	}
}

func TestDatasetHelpers(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := openStore(t, backend)
			d, err := dataset.Random(dataset.RandomOptions{})
			require.NoError(t, err)

			require.NoError(t, store.PutDataset(s, "lab", d))
			loaded, err := store.GetDataset(s, "lab")
			require.NoError(t, err)
			assert.Equal(t, d.Bytes(), loaded.Bytes())
			assert.True(t, loaded.IsActiveComplete())

			_, err = store.GetDataset(s, "missing")
			assert.ErrorIs(t, err, store.ErrNotFound)

			assert.ErrorIs(t, store.PutDataset(s, "", d), store.ErrEmptyName)

			// Oversized blobs are refused on load.
			require.NoError(t, s.Put("big", make([]byte, dataset.MaxSize+1)))
			_, err = store.GetDataset(s, "big")
			assert.Error(t, err)
			assert.NotErrorIs(t, err, store.ErrNotFound)

			require.NoError(t, d.SetChannel(radio.NewChannel(0, 26)))
			require.NoError(t, store.PutDataset(s, "lab", d))
			loaded, err = store.GetDataset(s, "lab")
			require.NoError(t, err)
			channel, _ := loaded.Channel()
			assert.Equal(t, uint16(26), channel.Number)
		})
	}
}

func TestOpen(t *testing.T) {
	_, err := store.Open("redis", filepath.Join(t.TempDir(), "x"))
	assert.ErrorIs(t, err, store.ErrUnknownBackend)

	path := filepath.Join(t.TempDir(), "configured.db")
	require.NoError(t, core.LoadConfigString("[store]\nbackend = \"sqlite\"\npath = \""+filepath.ToSlash(path)+"\"\n"))
	defer core.ResetConfig()

	s, err := store.OpenConfigured()
	require.NoError(t, err)
	defer s.Close()
	_, ok := s.(*store.SqliteStore)
	assert.True(t, ok)
	assert.Equal(t, "SqliteStore("+filepath.ToSlash(path)+")", s.(*store.SqliteStore).String())
}
