// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types. The type string doubles as the registered
// driver name.
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// DB wraps sql.DB with the configured database type so queries written
// with ? placeholders run unchanged on either driver.
type DB struct {
	*sql.DB
	Type string
}

// Open connects to the configured database. For sqlite, url is a file
// path (or :memory:); for postgres, a connection string.
func Open(databaseType, url string) (*DB, error) {
	switch databaseType {
	case TypeSQLite, TypePostgres:
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}

	conn, err := sql.Open(databaseType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{DB: conn, Type: databaseType}, nil
}

// Rebind rewrites ? placeholders to $1..$n for postgres. SQLite takes ?
// natively, so the query passes through.
func (d *DB) Rebind(query string) string {
	if d.Type != TypePostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func (d *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return d.DB.Exec(d.Rebind(query), args...)
}

func (d *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return d.DB.Query(d.Rebind(query), args...)
}

func (d *DB) QueryRow(query string, args ...interface{}) *sql.Row {
	return d.DB.QueryRow(d.Rebind(query), args...)
}
