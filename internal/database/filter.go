// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package database

import "strings"

// TweetFilter narrows the tweet set every analytics query aggregates over.
// Nil fields are unset and match all rows. Set fields combine with AND, so
// filter application order never changes the result.
type TweetFilter struct {
	// Month is the calendar month, 1..12.
	Month *int

	// DayOfWeek is the Monday-first weekday index, 0..6.
	DayOfWeek *int

	// DayType is "Weekday" or "Weekend".
	DayType *string
}

// IsZero reports whether no filter fields are set.
func (f TweetFilter) IsZero() bool {
	return f.Month == nil && f.DayOfWeek == nil && f.DayType == nil
}

// buildFilterConditions builds the WHERE clause conditions and args for a
// filter. Returns the condition strings (joined with AND by the caller) and
// the matching argument slice.
func buildFilterConditions(filter TweetFilter) ([]string, []interface{}) {
	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if filter.Month != nil {
		conditions = append(conditions, "month = ?")
		args = append(args, *filter.Month)
	}
	if filter.DayOfWeek != nil {
		conditions = append(conditions, "day_of_week = ?")
		args = append(args, *filter.DayOfWeek)
	}
	if filter.DayType != nil {
		conditions = append(conditions, "day_type = ?")
		args = append(args, *filter.DayType)
	}

	return conditions, args
}

// buildFilterWhereClause renders a filter as a full WHERE clause, or an
// empty string when the filter is unset.
func buildFilterWhereClause(filter TweetFilter) (string, []interface{}) {
	conditions, args := buildFilterConditions(filter)
	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
