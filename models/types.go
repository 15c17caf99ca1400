package models

// Request types

type CreateUserRequest struct {
	Username string `json:"username"`
}

// Duration is a pointer so an explicit 0 is distinguishable from an
// absent field.
type CreateExerciseRequest struct {
	Description string `json:"description"`
	Duration    *int64 `json:"duration"`
	Date        string `json:"date"`
}

// Response types

type CreateExerciseResponse struct {
	ExerciseID  int64  `json:"exerciseId"`
	UserID      int64  `json:"userId"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	Date        string `json:"date"`
}

type LogResponse struct {
	ID       int64      `json:"id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []Exercise `json:"log"`
}

// Domain types

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Exercise struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"-"` // Never exposed in log output
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	Date        string `json:"date"` // RFC 3339 UTC timestamp
}

// Envelope is the uniform wrapper on every API response. Successes
// carry Data; failures carry Error, except the historical
// missing-username case which uses Message.
type Envelope struct {
	Status  int         `json:"status"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}
