// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seriesdb archives result tables in a SQL database so that
// charts can be regenerated without the original CSV files.
package seriesdb

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/labnotes/seriesplot/seriesfmt"
)

// ErrNotFound is returned by Get when no table has the requested
// name.
var ErrNotFound = errors.New("table not found")

// DB is an archive of named tables. It's safe for concurrent use by
// multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a
// connection to driverName. It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS SeriesTables (
	TableID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Name VARCHAR(255) NOT NULL UNIQUE,
	FileName VARCHAR(1024),
	Columns BLOB
);
CREATE TABLE IF NOT EXISTS SeriesRows (
	TableID BIGINT UNSIGNED,
	RowIndex BIGINT UNSIGNED,
	Content BLOB,
	PRIMARY KEY (TableID, RowIndex),
	FOREIGN KEY (TableID) REFERENCES SeriesTables(TableID) ON UPDATE CASCADE ON DELETE CASCADE
);
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// Put stores t under name, replacing any table already stored under
// that name.
func (db *DB) Put(ctx context.Context, name string, t *seriesfmt.Table) (err error) {
	cols, err := json.Marshal(t.Columns())
	if err != nil {
		return err
	}

	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err := deleteTable(ctx, tx, name); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "INSERT INTO SeriesTables(Name, FileName, Columns) VALUES (?, ?, ?)", name, t.FileName, cols)
	if err != nil {
		return fmt.Errorf("inserting table %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	insert, err := tx.PrepareContext(ctx, "INSERT INTO SeriesRows(TableID, RowIndex, Content) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer insert.Close()
	for i := 0; i < t.Len(); i++ {
		row, err := json.Marshal(t.Row(i))
		if err != nil {
			return err
		}
		if _, err := insert.ExecContext(ctx, id, i, row); err != nil {
			return fmt.Errorf("inserting row %d of %q: %w", i, name, err)
		}
	}
	return tx.Commit()
}

func deleteTable(ctx context.Context, tx *sql.Tx, name string) error {
	// Delete rows explicitly so that engines without foreign key
	// enforcement do not keep orphans.
	if _, err := tx.ExecContext(ctx, "DELETE FROM SeriesRows WHERE TableID IN (SELECT TableID FROM SeriesTables WHERE Name = ?)", name); err != nil {
		return fmt.Errorf("deleting rows of %q: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM SeriesTables WHERE Name = ?", name); err != nil {
		return fmt.Errorf("deleting table %q: %w", name, err)
	}
	return nil
}

// Get returns the table stored under name, or an error wrapping
// ErrNotFound.
func (db *DB) Get(ctx context.Context, name string) (*seriesfmt.Table, error) {
	var (
		id       int64
		fileName sql.NullString
		colsJSON []byte
	)
	err := db.sql.QueryRowContext(ctx, "SELECT TableID, FileName, Columns FROM SeriesTables WHERE Name = ?", name).Scan(&id, &fileName, &colsJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	} else if err != nil {
		return nil, err
	}
	var cols []string
	if err := json.Unmarshal(colsJSON, &cols); err != nil {
		return nil, fmt.Errorf("table %q: bad columns: %w", name, err)
	}

	rows, err := db.sql.QueryContext(ctx, "SELECT Content FROM SeriesRows WHERE TableID = ? ORDER BY RowIndex", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var data [][]string
	for rows.Next() {
		var content []byte
		if err := rows.Scan(&content); err != nil {
			return nil, err
		}
		var row []string
		if err := json.Unmarshal(content, &row); err != nil {
			return nil, fmt.Errorf("table %q: bad row %d: %w", name, len(data), err)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return seriesfmt.NewTable(fileName.String, cols, data)
}

// Delete removes the table stored under name. Deleting a missing
// table is not an error.
func (db *DB) Delete(ctx context.Context, name string) (err error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := deleteTable(ctx, tx, name); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// TableInfo describes a stored table.
type TableInfo struct {
	Name     string
	FileName string
	Rows     int
}

// List returns the stored tables sorted by name.
func (db *DB) List(ctx context.Context) ([]TableInfo, error) {
	rows, err := db.sql.QueryContext(ctx, `
SELECT t.Name, t.FileName, COUNT(r.RowIndex)
FROM SeriesTables t LEFT JOIN SeriesRows r ON r.TableID = t.TableID
GROUP BY t.TableID, t.Name, t.FileName
ORDER BY t.Name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TableInfo
	for rows.Next() {
		var info TableInfo
		var fileName sql.NullString
		if err := rows.Scan(&info.Name, &fileName, &info.Rows); err != nil {
			return nil, err
		}
		info.FileName = fileName.String
		out = append(out, info)
	}
	return out, rows.Err()
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	return db.sql.Close()
}
