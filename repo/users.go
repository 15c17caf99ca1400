// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repo

import (
	"database/sql"

	"github.com/danielhkuo/exercise-tracker/db"
	"github.com/danielhkuo/exercise-tracker/errs"
	"github.com/danielhkuo/exercise-tracker/models"
)

type Users struct {
	db *db.DB
}

func NewUsers(d *db.DB) *Users {
	return &Users{db: d}
}

// List returns all users. Zero users is a not-found condition: the API
// contract answers an empty table with 404 rather than an empty list.
func (r *Users) List() ([]models.User, error) {
	rows, err := r.db.Query(`SELECT ID, username FROM users ORDER BY ID`)
	if err != nil {
		return nil, errs.Internal("Internal Server Error", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, errs.Internal("Internal Server Error", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Internal("Internal Server Error", err)
	}

	if len(users) == 0 {
		return nil, errs.NotFound("No users")
	}

	return users, nil
}

// Get looks up a user by id.
func (r *Users) Get(id int64) (models.User, error) {
	var u models.User
	err := r.db.QueryRow(`SELECT ID, username FROM users WHERE ID = ?`, id).Scan(&u.ID, &u.Username)
	if err == sql.ErrNoRows {
		return models.User{}, errs.NotFound("User not found")
	}
	if err != nil {
		return models.User{}, errs.Internal("Internal Server Error", err)
	}
	return u, nil
}

// Create inserts a user and returns the stored record with its
// assigned id. The username pre-check preserves the 400-on-duplicate
// contract; the UNIQUE constraint backs it up against races.
func (r *Users) Create(username string) (models.User, error) {
	if username == "" {
		return models.User{}, errs.Validation("Username is required")
	}

	var existing int64
	err := r.db.QueryRow(`SELECT ID FROM users WHERE username = ?`, username).Scan(&existing)
	if err == nil {
		return models.User{}, errs.Conflict("User with that username already exists.")
	}
	if err != sql.ErrNoRows {
		return models.User{}, errs.Internal("Internal Server Error", err)
	}

	id, err := r.insert(username)
	if err != nil {
		return models.User{}, errs.Internal("Internal Server Error", err)
	}

	return models.User{ID: id, Username: username}, nil
}

// insert returns the assigned id. lib/pq has no LastInsertId, so the
// postgres path uses RETURNING.
func (r *Users) insert(username string) (int64, error) {
	if r.db.Type == db.TypePostgres {
		var id int64
		err := r.db.QueryRow(`INSERT INTO users (username) VALUES (?) RETURNING ID`, username).Scan(&id)
		return id, err
	}

	res, err := r.db.Exec(`INSERT INTO users (username) VALUES (?)`, username)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
