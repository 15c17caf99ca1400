// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package errs defines the service error taxonomy.

Repositories and handlers classify failures as validation, conflict,
not-found, internal, or malformed-request. Status and Message map any
error to the HTTP status and the client-facing string for the response
envelope; unclassified errors fall back to a generic 500 so internal
detail never leaks. Internal errors can wrap an underlying cause for
logging.
*/
package errs
