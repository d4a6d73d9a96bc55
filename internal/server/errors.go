// Package server provides the HTTP REST API for the compatibility service.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/destinique/backend/internal/engine"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrProfileNotFound indicates profile was not found
type ErrProfileNotFound struct {
	ProfileID uuid.UUID
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile not found: %s", e.ProfileID)
}

// ErrProfileIncomplete indicates a profile is missing the birth date or name
// required to generate assessments
type ErrProfileIncomplete struct {
	ProfileID uuid.UUID
}

func (e *ErrProfileIncomplete) Error() string {
	return fmt.Sprintf("profile is missing birth date or name: %s", e.ProfileID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrProfileNotFound:
		return http.StatusNotFound
	case *ErrProfileIncomplete, *engine.IncompleteDataError:
		return http.StatusUnprocessableEntity
	case *ErrValidation, *engine.InvalidInputError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
