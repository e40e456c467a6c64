package model

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func TestTask_EffectiveDate(t *testing.T) {
	created := day(2024, 1, 1)
	due := day(2024, 2, 1)

	if got := (Task{CreatedAt: created}).EffectiveDate(); !got.Equal(created) {
		t.Errorf("without due date: got %v, want %v", got, created)
	}
	if got := (Task{CreatedAt: created, DueDate: &due}).EffectiveDate(); !got.Equal(due) {
		t.Errorf("with due date: got %v, want %v", got, due)
	}
}

func TestTask_Overdue(t *testing.T) {
	now := day(2024, 6, 1)
	past := day(2024, 5, 1)
	future := day(2024, 7, 1)

	cases := []struct {
		name string
		task Task
		want bool
	}{
		{"no due date", Task{}, false},
		{"past due", Task{DueDate: &past}, true},
		{"future due", Task{DueDate: &future}, false},
		{"completed past due", Task{DueDate: &past, Completed: true}, false},
	}

	for _, tc := range cases {
		if got := tc.task.Overdue(now); got != tc.want {
			t.Errorf("%s: Overdue = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTaskFilters_Matches(t *testing.T) {
	due := day(2024, 3, 10).Add(18 * time.Hour)
	task := Task{CreatedAt: day(2024, 1, 1), DueDate: &due}

	cases := []struct {
		name    string
		filters TaskFilters
		want    bool
	}{
		{"empty", TaskFilters{}, true},
		{"completed mismatch", TaskFilters{Completed: ptr(true)}, false},
		{"completed match", TaskFilters{Completed: ptr(false)}, true},
		{"from before", TaskFilters{DateFrom: ptr(day(2024, 3, 1))}, true},
		{"from after", TaskFilters{DateFrom: ptr(day(2024, 3, 11))}, false},
		{"to same day is inclusive", TaskFilters{DateTo: ptr(day(2024, 3, 10))}, true},
		{"to before", TaskFilters{DateTo: ptr(day(2024, 3, 9))}, false},
		{"range", TaskFilters{DateFrom: ptr(day(2024, 3, 1)), DateTo: ptr(day(2024, 3, 31))}, true},
		{"created date is ignored when due set", TaskFilters{DateTo: ptr(day(2024, 1, 2))}, false},
	}

	for _, tc := range cases {
		if got := tc.filters.Matches(task); got != tc.want {
			t.Errorf("%s: Matches = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTaskFilters_MergeAndIsEmpty(t *testing.T) {
	base := TaskFilters{Completed: ptr(true), DateFrom: ptr(day(2024, 1, 1))}
	merged := base.Merge(TaskFilters{Completed: ptr(false), DateTo: ptr(day(2024, 2, 1))})

	if *merged.Completed != false {
		t.Error("expected Completed to be overridden")
	}
	if !merged.DateFrom.Equal(day(2024, 1, 1)) {
		t.Error("expected DateFrom to be retained")
	}
	if merged.DateTo == nil || !merged.DateTo.Equal(day(2024, 2, 1)) {
		t.Error("expected DateTo to be set")
	}

	if !(TaskFilters{}).IsEmpty() {
		t.Error("zero filters should be empty")
	}
	if merged.IsEmpty() {
		t.Error("merged filters should not be empty")
	}
	if (TaskFilters{}).UpperBound() != nil {
		t.Error("UpperBound without DateTo should be nil")
	}
}
