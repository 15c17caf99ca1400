// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(d *DB) error {
	schema := sqliteSchema
	if d.Type == TypePostgres {
		schema = postgresSchema
	}

	_, err := d.DB.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// date is an RFC 3339 UTC timestamp stored as TEXT; lexicographic
// comparison on it is chronological.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    ID INTEGER PRIMARY KEY,
    username TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS exercises (
    ID INTEGER PRIMARY KEY,
    userId INTEGER NOT NULL,
    description TEXT NOT NULL,
    duration INTEGER NOT NULL,
    date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_exercises_user_date ON exercises(userId, date);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS users (
    ID BIGSERIAL PRIMARY KEY,
    username TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS exercises (
    ID BIGSERIAL PRIMARY KEY,
    userId BIGINT NOT NULL,
    description TEXT NOT NULL,
    duration BIGINT NOT NULL,
    date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_exercises_user_date ON exercises(userId, date);
`
