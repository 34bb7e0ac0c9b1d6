package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoFieldsToUpdate is returned for an update without any fields
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrConflict is returned for duplicates and blocked deletes
	ErrConflict = errors.New("resource conflict")

	// ErrUnauthorized is returned when credentials or tokens are rejected
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDeliveryFailed is returned when the mail transport fails
	ErrDeliveryFailed = errors.New("delivery failed")
)

// translate maps repository errors onto service errors and adds context
func translate(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", action, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", action, ErrConflict)
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func conflict(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func requireChanges(changes map[string]interface{}) error {
	if len(changes) == 0 {
		return ErrNoFieldsToUpdate
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
