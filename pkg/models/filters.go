package model

import "time"

// TaskFilters is a conjunctive predicate. Nil fields mean the dimension is
// not constrained.
type TaskFilters struct {
	Completed *bool      `json:"completed,omitempty"`
	DateFrom  *time.Time `json:"dateFrom,omitempty"`
	DateTo    *time.Time `json:"dateTo,omitempty"`
}

func (f TaskFilters) IsEmpty() bool {
	return f.Completed == nil && f.DateFrom == nil && f.DateTo == nil
}

// UpperBound is DateTo widened through the end of its day.
func (f TaskFilters) UpperBound() *time.Time {
	if f.DateTo == nil {
		return nil
	}
	end := EndOfDay(*f.DateTo)
	return &end
}

// Matches evaluates the predicate against a task's completion flag and
// effective date.
func (f TaskFilters) Matches(t Task) bool {
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}

	effective := t.EffectiveDate()
	if f.DateFrom != nil && effective.Before(*f.DateFrom) {
		return false
	}
	if upper := f.UpperBound(); upper != nil && effective.After(*upper) {
		return false
	}

	return true
}

// Merge overlays the non-nil fields of other onto f.
func (f TaskFilters) Merge(other TaskFilters) TaskFilters {
	if other.Completed != nil {
		f.Completed = other.Completed
	}
	if other.DateFrom != nil {
		f.DateFrom = other.DateFrom
	}
	if other.DateTo != nil {
		f.DateTo = other.DateTo
	}
	return f
}
