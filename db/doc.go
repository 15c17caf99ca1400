// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database access and schema creation.

# Opening

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "sqlite" (modernc.org/sqlite, embedded single
file) and "postgres" (lib/pq).

# Placeholders

Queries throughout the codebase use ? placeholders. The DB wrapper
rebinds them to $1..$n for postgres, so repositories stay
driver-agnostic:

	conn.QueryRow("SELECT ID FROM users WHERE username = ?", name)

# Schema Creation

CreateSchema initializes the two tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for tables and
indexes.

# Tables

  - users: ID, username (unique)
  - exercises: ID, userId, description, duration, date

exercises.date is an RFC 3339 UTC timestamp stored as text;
lexicographic range comparisons on it are chronological, which is what
the log query builder relies on.
*/
package db
