package viewmodel

import (
	"fmt"
	"slices"
	"strings"
	"time"

	model "todolist.com/todolist/pkg/models"
)

type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return SortAscending, nil
	case "", "desc", "descending":
		return SortDescending, nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

func (o SortOrder) normalize() SortOrder {
	if o == SortAscending {
		return SortAscending
	}
	return SortDescending
}

type Stats struct {
	Total            int  `json:"total"`
	Completed        int  `json:"completed"`
	Pending          int  `json:"pending"`
	Filtered         int  `json:"filtered"`
	Overdue          int  `json:"overdue"`
	HasActiveFilters bool `json:"hasActiveFilters"`
}

type View struct {
	Tasks []model.Task `json:"tasks"`
	Stats Stats        `json:"stats"`
}

// DeriveView filters and sorts raw without modifying it. Statistics other
// than Filtered are computed over raw, not the visible subset.
func DeriveView(raw []model.Task, filters model.TaskFilters, order SortOrder, now time.Time) View {
	order = order.normalize()

	visible := make([]model.Task, 0, len(raw))
	for _, t := range raw {
		if filters.Matches(t) {
			visible = append(visible, t)
		}
	}
	SortTasks(visible, order)

	stats := Stats{
		Total:            len(raw),
		Filtered:         len(visible),
		HasActiveFilters: !filters.IsEmpty() || order != SortDescending,
	}
	for _, t := range raw {
		if t.Completed {
			stats.Completed++
		}
		if t.Overdue(now) {
			stats.Overdue++
		}
	}
	stats.Pending = stats.Total - stats.Completed

	return View{Tasks: visible, Stats: stats}
}

// SortTasks orders tasks in place by effective date. Pairs where either
// date is unset compare equal and keep their relative order.
func SortTasks(tasks []model.Task, order SortOrder) {
	order = order.normalize()
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		return compareEffective(a, b, order)
	})
}

func compareEffective(a, b model.Task, order SortOrder) int {
	da, db := a.EffectiveDate(), b.EffectiveDate()
	if da.IsZero() || db.IsZero() {
		return 0
	}

	c := da.Compare(db)
	if order == SortDescending {
		return -c
	}
	return c
}
