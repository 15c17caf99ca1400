// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package errs

import (
	"errors"
	"net/http"
)

// Kind classifies an error for HTTP status mapping.
type Kind int

const (
	KindValidation Kind = iota // malformed or missing input -> 400
	KindConflict               // duplicate unique key -> 400
	KindNotFound               // missing entity or empty collection -> 404
	KindInternal               // storage failure -> 500
	KindMalformed              // unreadable request -> 400
)

// Error is a classified error with a client-facing message and an
// optional underlying cause. The cause never reaches the wire.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal wraps a storage or encoding failure. The message is what
// clients see; err is kept for logging.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

func Malformed(message string) *Error {
	return &Error{Kind: KindMalformed, Message: message}
}

// Status maps an error to its HTTP status code. Unclassified errors
// count as internal.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// Message returns the client-facing message for an error. Unclassified
// errors get the generic internal text so no detail leaks.
func Message(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "Internal Server Error"
	}
	return e.Message
}

// Is reports whether err is a classified error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
