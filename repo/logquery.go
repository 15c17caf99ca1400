// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repo

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/danielhkuo/exercise-tracker/errs"
)

// DefaultLogLimit bounds log queries when the caller gives no limit.
const DefaultLogLimit = 100

// DayFormat is the accepted shape for date filters and exercise dates.
const DayFormat = "2006-01-02"

// dayPattern gates the YYYY-MM-DD shape before any date arithmetic.
var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// LogFilter describes a bounded query over one user's exercise log.
// From and To hold YYYY-MM-DD strings already validated by
// ParseLogFilter; empty means unbounded on that side.
type LogFilter struct {
	UserID int64
	From   string
	To     string
	Limit  int
}

// ParseLogFilter validates the from/to/limit query parameters for a
// log listing. Malformed dates are rejected here rather than silently
// matching nothing downstream.
func ParseLogFilter(userID int64, from, to, limit string) (LogFilter, error) {
	f := LogFilter{UserID: userID, Limit: DefaultLogLimit}

	if from != "" {
		if _, err := ParseDay(from); err != nil {
			return LogFilter{}, errs.Validation("Invalid from date. Date should be in yyyy-mm-dd format")
		}
		f.From = from
	}

	if to != "" {
		if _, err := ParseDay(to); err != nil {
			return LogFilter{}, errs.Validation("Invalid to date. Date should be in yyyy-mm-dd format")
		}
		f.To = to
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n <= 0 {
			return LogFilter{}, errs.Validation("Invalid limit parameter")
		}
		f.Limit = n
	}

	return f, nil
}

// SQL renders the filter as a parameterized query. Clause order is
// fixed: the userId equality, the optional date range, then the row
// bound. The To day is inclusive: advancing it one day turns it into
// an exclusive upper bound over timestamps.
func (f LogFilter) SQL() (string, []interface{}) {
	query := `SELECT ID, userId, description, duration, date FROM exercises WHERE userId = ?`
	args := []interface{}{f.UserID}

	switch {
	case f.From != "" && f.To != "":
		query += ` AND date >= ? AND date < ?`
		args = append(args, f.From, nextDay(f.To))
	case f.From != "":
		query += ` AND date >= ?`
		args = append(args, f.From)
	case f.To != "":
		query += ` AND date < ?`
		args = append(args, nextDay(f.To))
	}

	query += ` LIMIT ?`
	args = append(args, f.Limit)

	return query, args
}

// ParseDay checks both the YYYY-MM-DD shape and calendar validity of a
// date string and returns its midnight UTC instant.
func ParseDay(s string) (time.Time, error) {
	if !dayPattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("date %q is not in yyyy-mm-dd format", s)
	}
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not a valid calendar date: %w", s, err)
	}
	return t, nil
}

// nextDay returns the RFC 3339 timestamp one day past midnight of the
// given day. Days reach here already validated, so the parse cannot
// fail.
func nextDay(day string) string {
	t, _ := time.Parse(DayFormat, day)
	return t.Add(24 * time.Hour).UTC().Format(time.RFC3339)
}
