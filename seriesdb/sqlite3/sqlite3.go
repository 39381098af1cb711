// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite3 provides the sqlite3 driver for
// seriesdb.OpenSQL. It must be imported instead of go-sqlite3 to
// ensure foreign keys are properly honored.
package sqlite3

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/labnotes/seriesplot/seriesdb"
)

func init() {
	seriesdb.RegisterOpenHook("sqlite3", func(db *sql.DB) error {
		// A single connection keeps :memory: databases and
		// the foreign_keys pragma consistent across queries.
		db.SetMaxOpenConns(1)
		_, err := db.Exec("PRAGMA foreign_keys = ON")
		return err
	})
}
