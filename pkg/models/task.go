package model

import (
	"time"
)

type Task struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"size:100;not null" json:"title"`
	Description string     `gorm:"type:text;not null;default:''" json:"description"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	Tags        Tags       `gorm:"not null" json:"tags"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updatedAt"`
}

// EffectiveDate is the timestamp used for filtering and sorting: the due
// date when one is set, otherwise the creation time.
func (t Task) EffectiveDate() time.Time {
	if t.DueDate != nil {
		return *t.DueDate
	}
	return t.CreatedAt
}

// Overdue reports whether an open task's deadline has passed at now.
func (t Task) Overdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}
