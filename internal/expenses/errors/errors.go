package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Resource, e.ID)
}

func NewNotFoundError(resource string, id int64) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func NewConflictError(msg string) error {
	return &ConflictError{Msg: msg}
}

func IsConflictError(err error) bool {
	var conflictError *ConflictError
	ok := errors.As(err, &conflictError)
	return ok
}
