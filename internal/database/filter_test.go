// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package database

import (
	"testing"

	"github.com/tomtom215/sentigraph/internal/models"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestBuildFilterConditions(t *testing.T) {
	tests := []struct {
		name           string
		filter         TweetFilter
		wantConditions []string
		wantArgs       int
	}{
		{
			name:           "empty filter",
			filter:         TweetFilter{},
			wantConditions: []string{},
			wantArgs:       0,
		},
		{
			name:           "month only",
			filter:         TweetFilter{Month: intPtr(8)},
			wantConditions: []string{"month = ?"},
			wantArgs:       1,
		},
		{
			name:           "day of week only",
			filter:         TweetFilter{DayOfWeek: intPtr(0)},
			wantConditions: []string{"day_of_week = ?"},
			wantArgs:       1,
		},
		{
			name:           "day type only",
			filter:         TweetFilter{DayType: strPtr(models.DayTypeWeekend)},
			wantConditions: []string{"day_type = ?"},
			wantArgs:       1,
		},
		{
			name:           "all three",
			filter:         TweetFilter{Month: intPtr(8), DayOfWeek: intPtr(5), DayType: strPtr(models.DayTypeWeekend)},
			wantConditions: []string{"month = ?", "day_of_week = ?", "day_type = ?"},
			wantArgs:       3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conditions, args := buildFilterConditions(tt.filter)
			if len(conditions) != len(tt.wantConditions) {
				t.Fatalf("conditions = %v, want %v", conditions, tt.wantConditions)
			}
			for i, want := range tt.wantConditions {
				if conditions[i] != want {
					t.Errorf("conditions[%d] = %q, want %q", i, conditions[i], want)
				}
			}
			if len(args) != tt.wantArgs {
				t.Errorf("len(args) = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}

func TestBuildFilterWhereClause(t *testing.T) {
	clause, args := buildFilterWhereClause(TweetFilter{})
	if clause != "" || args != nil {
		t.Errorf("empty filter: clause = %q, args = %v", clause, args)
	}

	clause, args = buildFilterWhereClause(TweetFilter{Month: intPtr(8), DayType: strPtr(models.DayTypeWeekday)})
	want := " WHERE month = ? AND day_type = ?"
	if clause != want {
		t.Errorf("clause = %q, want %q", clause, want)
	}
	if len(args) != 2 {
		t.Errorf("len(args) = %d, want 2", len(args))
	}
}

func TestFilterIsZero(t *testing.T) {
	if !(TweetFilter{}).IsZero() {
		t.Error("empty filter should be zero")
	}
	if (TweetFilter{Month: intPtr(1)}).IsZero() {
		t.Error("filter with month should not be zero")
	}
}
