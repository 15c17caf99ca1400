// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/exercise-tracker/models"
	"github.com/danielhkuo/exercise-tracker/repo"
	"github.com/danielhkuo/exercise-tracker/testutil"
)

// TestFullTrackingWorkflow tests the complete end-to-end workflow:
// 1. Create a user
// 2. Reject a duplicate username
// 3. Record exercises on several dates
// 4. Query the full log
// 5. Query a date-ranged window
// 6. Verify the round trip of one entry
func TestFullTrackingWorkflow(t *testing.T) {
	d := testutil.SetupTestDB(t)
	defer d.Close()

	users := repo.NewUsers(d)
	exercises := repo.NewExercises(d)
	userHandler := NewUserHandler(users)
	exerciseHandler := NewExerciseHandler(users, exercises)

	// Step 1: Create a user
	req := testutil.MakeRequest("POST", "/api/users", models.CreateUserRequest{Username: "alice"}, nil)
	w := httptest.NewRecorder()
	userHandler.CreateUser(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 1 - Create user failed: %d - %s", w.Code, w.Body.String())
	}

	var createResp struct {
		Data models.User `json:"data"`
	}
	testutil.AssertJSON(t, w, &createResp)
	userID := createResp.Data.ID
	pathID := strconv.FormatInt(userID, 10)

	if userID == 0 {
		t.Fatal("Step 1 - Missing assigned user id")
	}
	t.Logf("Step 1 - Created user %d", userID)

	// Step 2: Duplicate username is rejected
	req = testutil.MakeRequest("POST", "/api/users", models.CreateUserRequest{Username: "alice"}, nil)
	w = httptest.NewRecorder()
	userHandler.CreateUser(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Step 2 - Expected 400 for duplicate username, got %d", w.Code)
	}
	t.Log("Step 2 - Duplicate username rejected")

	// Step 3: Record exercises across three days
	days := []struct {
		description string
		duration    int64
		date        string
	}{
		{"running", 30, "2024-03-01"},
		{"swimming", 45, "2024-03-05"},
		{"cycling", 60, "2024-03-10"},
	}

	for _, day := range days {
		dur := day.duration
		body := models.CreateExerciseRequest{Description: day.description, Duration: &dur, Date: day.date}
		req := testutil.MakeRequest("POST", "/api/users/"+pathID+"/exercises", body, nil)
		req.SetPathValue("id", pathID)
		w := httptest.NewRecorder()
		exerciseHandler.CreateExercise(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Step 3 - Record '%s' failed: %d - %s", day.description, w.Code, w.Body.String())
		}
	}
	t.Logf("Step 3 - Recorded %d exercises", len(days))

	// Step 4: Full log
	req = testutil.MakeRequest("GET", "/api/users/"+pathID+"/logs", nil, nil)
	req.SetPathValue("id", pathID)
	w = httptest.NewRecorder()
	exerciseHandler.GetLogs(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Full log failed: %d - %s", w.Code, w.Body.String())
	}

	var fullResp struct {
		Data models.LogResponse `json:"data"`
	}
	testutil.AssertJSON(t, w, &fullResp)

	if fullResp.Data.Count != 3 {
		t.Fatalf("Step 4 - Expected 3 entries, got %d", fullResp.Data.Count)
	}
	t.Logf("Step 4 - Full log has %d entries", fullResp.Data.Count)

	// Step 5: Window covering the middle day through the last;
	// the to day itself must be included
	req = testutil.MakeRequest("GET", "/api/users/"+pathID+"/logs?from=2024-03-02&to=2024-03-10", nil, nil)
	req.SetPathValue("id", pathID)
	w = httptest.NewRecorder()
	exerciseHandler.GetLogs(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Ranged log failed: %d - %s", w.Code, w.Body.String())
	}

	var rangedResp struct {
		Data models.LogResponse `json:"data"`
	}
	testutil.AssertJSON(t, w, &rangedResp)

	if rangedResp.Data.Count != 2 {
		t.Fatalf("Step 5 - Expected 2 entries in window, got %d", rangedResp.Data.Count)
	}
	t.Logf("Step 5 - Window returned %d entries", rangedResp.Data.Count)

	// Step 6: Round trip of the first windowed entry
	entry := rangedResp.Data.Log[0]
	if entry.Description != "swimming" || entry.Duration != 45 {
		t.Errorf("Step 6 - Round trip mismatch: %+v", entry)
	}
	if entry.Date != "2024-03-05T00:00:00Z" {
		t.Errorf("Step 6 - Expected normalized date, got %q", entry.Date)
	}
	t.Log("Step 6 - Round trip verified")
}
