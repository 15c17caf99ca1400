// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/exercise-tracker/errs"
	"github.com/danielhkuo/exercise-tracker/middleware"
	"github.com/danielhkuo/exercise-tracker/models"
	"github.com/danielhkuo/exercise-tracker/repo"
)

type UserHandler struct {
	users *repo.Users
}

func NewUserHandler(users *repo.Users) *UserHandler {
	return &UserHandler{users: users}
}

// GetUsers handles GET /api/users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List()
	if err != nil {
		if errs.Is(err, errs.KindInternal) {
			slog.Error("failed to list users", "error", err)
		}
		middleware.ErrorEnvelope(w, err)
		return
	}

	middleware.DataEnvelope(w, users)
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorEnvelope(w, errs.Malformed("Bad Request"))
		return
	}

	if req.Username == "" {
		// Historical wire quirk: this failure reports under the
		// message key, not error.
		middleware.JSONResponse(w, http.StatusBadRequest, models.Envelope{
			Status:  http.StatusBadRequest,
			Success: false,
			Message: "Username is required",
		})
		return
	}

	user, err := h.users.Create(req.Username)
	if err != nil {
		if errs.Is(err, errs.KindInternal) {
			slog.Error("failed to create user", "error", err)
		}
		middleware.ErrorEnvelope(w, err)
		return
	}

	slog.Info("user created", "user_id", user.ID, "username", user.Username)

	middleware.DataEnvelope(w, user)
}
