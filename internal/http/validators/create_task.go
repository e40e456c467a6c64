package validators

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	dto "todolist.com/todolist/internal/data_models"
	model "todolist.com/todolist/pkg/models"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if err := validateTitle(r.Title); err != nil {
		return err
	}
	if err := validateDescription(r.Description); err != nil {
		return err
	}
	if err := validateTags(r.Tags); err != nil {
		return err
	}
	if r.DueDate != nil && strings.TrimSpace(*r.DueDate) != "" {
		return validateDate("dueDate", *r.DueDate)
	}
	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return echo.NewHTTPError(http.StatusBadRequest, "title must be at most 100 characters")
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return echo.NewHTTPError(http.StatusBadRequest, "description must be at most 500 characters")
	}
	return nil
}

func validateTags(tags []string) error {
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "tags must be non-empty strings")
		}
	}
	return nil
}

func validateDate(field, value string) error {
	if _, err := model.ParseDate(value); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, field+" must be an ISO-8601 date")
	}
	return nil
}
