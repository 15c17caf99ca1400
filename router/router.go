// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/exercise-tracker/cliparse"
	"github.com/danielhkuo/exercise-tracker/db"
	"github.com/danielhkuo/exercise-tracker/handlers"
	"github.com/danielhkuo/exercise-tracker/middleware"
	"github.com/danielhkuo/exercise-tracker/repo"
)

func NewRouter(d *db.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize repositories and handlers
	users := repo.NewUsers(d)
	exercises := repo.NewExercises(d)

	userHandler := handlers.NewUserHandler(users)
	exerciseHandler := handlers.NewExerciseHandler(users, exercises)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Users
	mux.HandleFunc("GET /api/users", wrap(userHandler.GetUsers))
	mux.HandleFunc("POST /api/users", wrap(userHandler.CreateUser))

	// Exercise logging
	mux.HandleFunc("POST /api/users/{id}/exercises", wrap(exerciseHandler.CreateExercise))
	mux.HandleFunc("GET /api/users/{id}/logs", wrap(exerciseHandler.GetLogs))

	// Static frontend (index.html and friends)
	if cfg.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return mux
}

// wrap applies the standard per-request middleware chain. The request
// ID must be assigned before logging runs so both log lines carry it.
func wrap(h http.HandlerFunc) http.HandlerFunc {
	return middleware.WithRequestID(middleware.WithLogging(h))
}
