package validators

import (
	"strings"

	dto "todolist.com/todolist/internal/data_models"
)

// ValidateUpdateTaskRequest checks only the fields present in the patch.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title != nil {
		if err := validateTitle(*r.Title); err != nil {
			return err
		}
	}
	if r.Description != nil {
		if err := validateDescription(*r.Description); err != nil {
			return err
		}
	}
	if r.Tags != nil {
		if err := validateTags(*r.Tags); err != nil {
			return err
		}
	}
	if r.DueDate != nil && strings.TrimSpace(*r.DueDate) != "" {
		return validateDate("dueDate", *r.DueDate)
	}
	return nil
}
