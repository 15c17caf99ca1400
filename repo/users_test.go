// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repo

import (
	"testing"

	"github.com/danielhkuo/exercise-tracker/errs"
	"github.com/danielhkuo/exercise-tracker/testutil"
)

func TestUsersCreate(t *testing.T) {
	d := testutil.SetupTestDB(t)
	defer d.Close()

	users := NewUsers(d)

	u, err := users.Create("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID == 0 {
		t.Error("expected an assigned id")
	}
	if u.Username != "alice" {
		t.Errorf("expected username alice, got %q", u.Username)
	}

	// Second insert with the same username is a conflict
	_, err = users.Create("alice")
	if !errs.Is(err, errs.KindConflict) {
		t.Errorf("expected a conflict error, got %v", err)
	}

	// Empty username is a validation failure
	_, err = users.Create("")
	if !errs.Is(err, errs.KindValidation) {
		t.Errorf("expected a validation error, got %v", err)
	}
}

func TestUsersList(t *testing.T) {
	d := testutil.SetupTestDB(t)
	defer d.Close()

	users := NewUsers(d)

	// Zero rows is a not-found condition, not an empty success
	_, err := users.List()
	if !errs.Is(err, errs.KindNotFound) {
		t.Errorf("expected a not-found error for empty table, got %v", err)
	}

	testutil.CreateTestUser(t, d, "alice")
	testutil.CreateTestUser(t, d, "bob")

	all, err := users.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 users, got %d", len(all))
	}
	if all[0].Username != "alice" || all[1].Username != "bob" {
		t.Errorf("unexpected ordering: %+v", all)
	}
}

func TestUsersGet(t *testing.T) {
	d := testutil.SetupTestDB(t)
	defer d.Close()

	users := NewUsers(d)
	id := testutil.CreateTestUser(t, d, "carol")

	u, err := users.Get(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Username != "carol" {
		t.Errorf("expected carol, got %q", u.Username)
	}

	_, err = users.Get(9999)
	if !errs.Is(err, errs.KindNotFound) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}
