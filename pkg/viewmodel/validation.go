package viewmodel

import (
	"errors"
	"strings"
	"unicode/utf8"

	"todolist.com/todolist/pkg/client"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
)

var ErrDeleteNotConfirmed = errors.New("delete not confirmed")

// ValidationError rejects input before any request is issued.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func validateTitle(title string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	switch {
	case n == 0:
		return &ValidationError{Field: "title", Message: "title is required"}
	case n > maxTitleLength:
		return &ValidationError{Field: "title", Message: "title must be less than 100 characters"}
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return &ValidationError{Field: "description", Message: "description must be less than 500 characters"}
	}
	return nil
}

func validateCreate(data client.CreateTaskData) error {
	if err := validateTitle(data.Title); err != nil {
		return err
	}
	return validateDescription(data.Description)
}

func validateUpdate(data client.UpdateTaskData) error {
	if data.Title != nil {
		if err := validateTitle(*data.Title); err != nil {
			return err
		}
	}
	if data.Description != nil {
		return validateDescription(*data.Description)
	}
	return nil
}
