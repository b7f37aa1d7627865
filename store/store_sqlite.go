/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package store

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/twine-rs/twine/core"
	"go.uber.org/multierr"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS datasets (
	name TEXT PRIMARY KEY,
	tlvs BLOB NOT NULL,
	fingerprint INTEGER NOT NULL
)`

// SqliteStore keeps datasets in the datasets table of a sqlite database.
type SqliteStore struct {
	db   *sql.DB
	path string
}

func NewSqliteStore(path string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err = db.Exec(sqliteSchema); err != nil {
		return nil, multierr.Append(errors.Wrap(err, "create datasets table"), db.Close())
	}
	return &SqliteStore{db: db, path: path}, nil
}

func (s *SqliteStore) String() string {
	return "SqliteStore(" + s.path + ")"
}

func (s *SqliteStore) Close() error {
	return s.db.Close()
}

func (s *SqliteStore) Get(name string) ([]byte, error) {
	var tlvs []byte
	err := s.db.QueryRow("SELECT tlvs FROM datasets WHERE name=?", name).Scan(&tlvs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if tlvs == nil {
		tlvs = []byte{}
	}
	return tlvs, nil
}

func (s *SqliteStore) Put(name string, tlvs []byte) error {
	if name == "" {
		return ErrEmptyName
	}
	if tlvs == nil {
		tlvs = []byte{}
	}
	_, err := s.db.Exec("INSERT OR REPLACE INTO datasets (name, tlvs, fingerprint) VALUES (?, ?, ?)",
		name, tlvs, int64(fingerprint(tlvs)))
	if err == nil {
		core.LogDebug(s, "Stored name="+name)
	}
	return err
}

func (s *SqliteStore) Remove(name string) error {
	_, err := s.db.Exec("DELETE FROM datasets WHERE name=?", name)
	return err
}

func (s *SqliteStore) List() ([]Entry, error) {
	rows, err := s.db.Query("SELECT name, length(tlvs), fingerprint FROM datasets ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var fp int64
		if err := rows.Scan(&e.Name, &e.Size, &fp); err != nil {
			return nil, err
		}
		e.Fingerprint = uint64(fp)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
