// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Exercise Tracker API server.

Exercise Tracker is a small REST service that records users and their
logged exercises and answers date-ranged log queries.

# Starting the Server

The server runs on an embedded SQLite file by default:

	go run main.go

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

A .env file in the working directory is loaded if present.

# Configuration

Optional settings (flags or environment):

  - PORT (-p): Server port (default: 3000)
  - DATABASE_URL (-d): SQLite file path or postgres connection string
    (default: users.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - STATIC_DIR (-s): Directory served at / (default: public)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, exercises, logs)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request IDs, envelope helpers
  - models: Request/response types and the response envelope
  - repo: User and exercise repositories, log query builder
  - errs: Error taxonomy mapped to HTTP statuses
  - db: Driver selection, placeholder rebinding, schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
