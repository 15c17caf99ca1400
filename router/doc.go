// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Exercise Tracker API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(conn, cfg)

# Endpoints

Health:

	GET /health

Users:

	GET  /api/users - List all users
	POST /api/users - Create a user

Exercise logging:

	POST /api/users/{id}/exercises - Record an exercise
	GET  /api/users/{id}/logs      - Query logs (from, to, limit)

Static frontend, when a static dir is configured:

	GET /

# Handler Initialization

The router builds the repositories and injects them into the handlers:

	users := repo.NewUsers(conn)
	exercises := repo.NewExercises(conn)
	userHandler := handlers.NewUserHandler(users)
	exerciseHandler := handlers.NewExerciseHandler(users, exercises)

Every API route is wrapped with request-ID assignment and logging.
*/
package router
