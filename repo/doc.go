// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package repo implements storage access for users and exercises.

# Repositories

Users and Exercises wrap the database handle and return classified
errors from the errs package:

	users := repo.NewUsers(conn)
	exercises := repo.NewExercises(conn)

# Log Queries

LogFilter turns the from/to/limit query parameters of a log listing
into a parameterized query:

	filter, err := repo.ParseLogFilter(userID, from, to, limit)
	query, args := filter.SQL()

Clause order is fixed: userId equality, optional date range, row
limit. A range's To day is inclusive; SQL() advances it one calendar
day and applies an exclusive upper bound, so every timestamp on the To
day matches. Malformed from/to values fail ParseLogFilter with a
validation error instead of silently matching nothing. Limit defaults
to 100; there is no upper cap.
*/
package repo
