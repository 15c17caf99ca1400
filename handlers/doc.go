// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Exercise
Tracker API.

# Handler Types

Each handler is a struct with repository dependencies:

  - UserHandler: user creation and listing
  - ExerciseHandler: exercise recording and log queries

Handlers are created via constructor functions that accept the
repositories:

	userHandler := handlers.NewUserHandler(users)
	exerciseHandler := handlers.NewExerciseHandler(users, exercises)

# Validation Order

Endpoints that reference a user resolve it first, then validate the
payload, so a missing user is always a 404 no matter what the body
contains:

	POST /api/users/{id}/exercises → CreateExercise
	GET  /api/users/{id}/logs      → GetLogs

# Responses

Successes answer 200 with the envelope's data field. Failures flow
through the errs taxonomy: validation and conflict are 400, missing
entities are 404, storage failures are 500. Client-facing failure
strings are a fixed wire contract; change them and existing clients
break.
*/
package handlers
