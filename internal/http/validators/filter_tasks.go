package validators

import (
	"strings"

	dto "todolist.com/todolist/internal/data_models"
)

func ValidateTaskFilterRequest(r *dto.TaskFilterRequest) error {
	if r.DateFrom != nil && strings.TrimSpace(*r.DateFrom) != "" {
		if err := validateDate("dateFrom", *r.DateFrom); err != nil {
			return err
		}
	}
	if r.DateTo != nil && strings.TrimSpace(*r.DateTo) != "" {
		if err := validateDate("dateTo", *r.DateTo); err != nil {
			return err
		}
	}
	return nil
}
