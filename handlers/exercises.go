// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/exercise-tracker/errs"
	"github.com/danielhkuo/exercise-tracker/middleware"
	"github.com/danielhkuo/exercise-tracker/models"
	"github.com/danielhkuo/exercise-tracker/repo"
)

type ExerciseHandler struct {
	users     *repo.Users
	exercises *repo.Exercises
}

func NewExerciseHandler(users *repo.Users, exercises *repo.Exercises) *ExerciseHandler {
	return &ExerciseHandler{users: users, exercises: exercises}
}

// CreateExercise handles POST /api/users/:id/exercises
func (h *ExerciseHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || userID <= 0 {
		middleware.ErrorEnvelope(w, errs.Validation("User id is required param"))
		return
	}

	// Resolve the user before validating the payload so a missing user
	// is always a 404 regardless of body contents.
	if _, err := h.users.Get(userID); err != nil {
		if errs.Is(err, errs.KindNotFound) {
			err = errs.NotFound("User does not exist")
		} else {
			slog.Error("failed to query user", "error", err)
		}
		middleware.ErrorEnvelope(w, err)
		return
	}

	var req models.CreateExerciseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorEnvelope(w, errs.Malformed("Bad Request"))
		return
	}

	if req.Description == "" || req.Duration == nil {
		middleware.ErrorEnvelope(w, errs.Validation("Description and duration are required fields"))
		return
	}

	if *req.Duration < 0 {
		middleware.ErrorEnvelope(w, errs.Validation("Duration cannot be negative"))
		return
	}

	// Absent date defaults to now; a provided date must be a real
	// yyyy-mm-dd day. Either way the stored value is a full RFC 3339
	// UTC timestamp.
	date := time.Now().UTC().Format(time.RFC3339)
	if req.Date != "" {
		day, err := repo.ParseDay(req.Date)
		if err != nil {
			middleware.ErrorEnvelope(w, errs.Validation("Invalid date format. Date should be in yyyy-mm-dd format"))
			return
		}
		date = day.UTC().Format(time.RFC3339)
	}

	ex, err := h.exercises.Create(userID, req.Description, *req.Duration, date)
	if err != nil {
		slog.Error("failed to insert exercise", "error", err)
		middleware.ErrorEnvelope(w, err)
		return
	}

	slog.Info("exercise created", "user_id", userID, "exercise_id", ex.ID)

	middleware.DataEnvelope(w, models.CreateExerciseResponse{
		ExerciseID:  ex.ID,
		UserID:      ex.UserID,
		Description: ex.Description,
		Duration:    ex.Duration,
		Date:        ex.Date,
	})
}

// GetLogs handles GET /api/users/:id/logs
func (h *ExerciseHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || userID <= 0 {
		middleware.ErrorEnvelope(w, errs.Validation("Invalid user ID parameter"))
		return
	}

	user, err := h.users.Get(userID)
	if err != nil {
		if errs.Is(err, errs.KindInternal) {
			slog.Error("failed to query user", "error", err)
		}
		middleware.ErrorEnvelope(w, err)
		return
	}

	q := r.URL.Query()
	filter, err := repo.ParseLogFilter(userID, q.Get("from"), q.Get("to"), q.Get("limit"))
	if err != nil {
		middleware.ErrorEnvelope(w, err)
		return
	}

	logs, err := h.exercises.List(filter)
	if err != nil {
		slog.Error("failed to query logs", "error", err)
		middleware.ErrorEnvelope(w, err)
		return
	}

	middleware.DataEnvelope(w, models.LogResponse{
		ID:       user.ID,
		Username: user.Username,
		Count:    len(logs),
		Log:      logs,
	})
}
