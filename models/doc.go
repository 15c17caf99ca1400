// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateUserRequest: username
  - CreateExerciseRequest: description, duration, date (optional)

CreateExerciseRequest.Duration is a pointer: the API must tell an
absent duration (rejected) apart from an explicit 0 (accepted).

# Response Types

  - CreateExerciseResponse: exerciseId, userId, description, duration, date
  - LogResponse: id, username, count, log

LogResponse.Log entries omit userId; it is implied by the requested
user.

# Domain Types

  - User: id, username
  - Exercise: id, userId, description, duration, date

# Envelope

Every response is wrapped in Envelope:

	{status, success, data}            on success (always 200)
	{status, success, error|message}   on failure

The message key appears only on the historical missing-username
failure; everything else reports under error.
*/
package models
