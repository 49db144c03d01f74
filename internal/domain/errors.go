package domain

import (
	"fmt"
	"net/http"
	"strings"
)

// NotFoundMessage is returned to clients when a word id has no row
const NotFoundMessage = "Can't find word"

// ValidationError is returned when a word or id fails validation
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Path+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFoundError is returned when no word matches the requested id
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return NotFoundMessage
}

// Status returns the HTTP status equivalent of the error
func (e *NotFoundError) Status() int {
	return http.StatusNotFound
}

// StorageError wraps any error coming from the database driver
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
