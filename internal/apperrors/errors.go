// Package apperrors defines the failure kinds the domain services report.
// Services return these unchanged; the HTTP layer maps them to statuses.
package apperrors

import "fmt"

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       uint
}

func NewNotFound(resource string, id uint) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id=%d not found", e.Resource, e.ID)
}

// DuplicateResourceError reports that a uniqueness invariant would be violated.
type DuplicateResourceError struct {
	Message string
}

func NewDuplicate(message string) *DuplicateResourceError {
	return &DuplicateResourceError{Message: message}
}

func (e *DuplicateResourceError) Error() string {
	return e.Message
}
