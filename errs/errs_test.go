// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("bad input"), http.StatusBadRequest},
		{"conflict", Conflict("duplicate"), http.StatusBadRequest},
		{"malformed", Malformed("unreadable"), http.StatusBadRequest},
		{"not found", NotFound("missing"), http.StatusNotFound},
		{"internal", Internal("broken", nil), http.StatusInternalServerError},
		{"unclassified", errors.New("surprise"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.err); got != tt.want {
				t.Errorf("Status() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	if got := Message(NotFound("User not found")); got != "User not found" {
		t.Errorf("expected classified message, got %q", got)
	}

	// Unclassified errors must not leak detail
	if got := Message(errors.New("pq: connection refused")); got != "Internal Server Error" {
		t.Errorf("expected generic message, got %q", got)
	}
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal("Internal Server Error", cause)

	if !errors.Is(err, cause) {
		t.Error("expected the cause to be reachable via errors.Is")
	}
	if err.Error() != "Internal Server Error: disk full" {
		t.Errorf("unexpected Error() text: %q", err.Error())
	}
	// The wire message stays generic even with a cause attached
	if Message(err) != "Internal Server Error" {
		t.Errorf("unexpected wire message: %q", Message(err))
	}
}

func TestIs(t *testing.T) {
	err := Conflict("duplicate")

	if !Is(err, KindConflict) {
		t.Error("expected KindConflict to match")
	}
	if Is(err, KindNotFound) {
		t.Error("expected KindNotFound not to match")
	}
	if Is(errors.New("plain"), KindConflict) {
		t.Error("expected a plain error not to match any kind")
	}

	// Classification survives wrapping
	wrapped := fmt.Errorf("listing users: %w", NotFound("No users"))
	if !Is(wrapped, KindNotFound) {
		t.Error("expected classification to survive wrapping")
	}
}
