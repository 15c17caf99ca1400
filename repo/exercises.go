// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repo

import (
	"database/sql"

	"github.com/danielhkuo/exercise-tracker/db"
	"github.com/danielhkuo/exercise-tracker/errs"
	"github.com/danielhkuo/exercise-tracker/models"
)

type Exercises struct {
	db *db.DB
}

func NewExercises(d *db.DB) *Exercises {
	return &Exercises{db: d}
}

// Create persists an exercise and returns the stored record. The
// caller has already resolved the user and normalized the date to an
// RFC 3339 UTC timestamp.
func (r *Exercises) Create(userID int64, description string, duration int64, date string) (models.Exercise, error) {
	id, err := r.insert(userID, description, duration, date)
	if err != nil {
		return models.Exercise{}, errs.Internal("Internal Server Error", err)
	}

	return r.Get(id)
}

// Get looks up a single exercise by id.
func (r *Exercises) Get(id int64) (models.Exercise, error) {
	var ex models.Exercise
	err := r.db.QueryRow(`
		SELECT ID, userId, description, duration, date FROM exercises WHERE ID = ?
	`, id).Scan(&ex.ID, &ex.UserID, &ex.Description, &ex.Duration, &ex.Date)

	if err == sql.ErrNoRows {
		return models.Exercise{}, errs.NotFound("Exercise not found")
	}
	if err != nil {
		return models.Exercise{}, errs.Internal("Internal Server Error", err)
	}
	return ex, nil
}

// List runs a log filter and returns the matching exercises in
// insertion order.
func (r *Exercises) List(f LogFilter) ([]models.Exercise, error) {
	query, args := f.SQL()

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, errs.Internal("Internal Server Error", err)
	}
	defer rows.Close()

	logs := []models.Exercise{}
	for rows.Next() {
		var ex models.Exercise
		if err := rows.Scan(&ex.ID, &ex.UserID, &ex.Description, &ex.Duration, &ex.Date); err != nil {
			return nil, errs.Internal("Internal Server Error", err)
		}
		logs = append(logs, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Internal("Internal Server Error", err)
	}

	return logs, nil
}

func (r *Exercises) insert(userID int64, description string, duration int64, date string) (int64, error) {
	if r.db.Type == db.TypePostgres {
		var id int64
		err := r.db.QueryRow(`
			INSERT INTO exercises (userId, description, duration, date) VALUES (?, ?, ?, ?) RETURNING ID
		`, userID, description, duration, date).Scan(&id)
		return id, err
	}

	res, err := r.db.Exec(`
		INSERT INTO exercises (userId, description, duration, date) VALUES (?, ?, ?, ?)
	`, userID, description, duration, date)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
