// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: SQLite file path or postgres connection string
    (default: users.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - StaticDir: Directory served at the root route (default: public)

# CLI Flags

	-p  Server port
	-d  Database URL or file path
	-t  Database type
	-s  Static file directory

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	STATIC_DIR    → -s

CLI flags take precedence over environment variables. Every setting
has a working default, so a bare invocation starts a SQLite-backed
server on port 3000.

# Validation

ParseFlags returns an error for a non-numeric PORT or a database type
other than sqlite/postgres.
*/
package cliparse
