// Package errors defines the service error taxonomy and its HTTP mapping.
//
// All store errors propagate to the caller as a failed operation; there are
// no retries and no partial recovery outside the transaction boundary.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

var (
	// ErrInvalidArgument marks bad input from the caller.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound marks a missing row the operation requires.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks an unexpected duplicate or constraint violation.
	ErrConflict = errors.New("conflict")
	// ErrStoreUnavailable marks connection or IO failures in the store.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// InvalidArgument wraps msg into an ErrInvalidArgument.
func InvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

// NotFound wraps msg into an ErrNotFound.
func NotFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

// Map classifies repo/infra errors into the service taxonomy. Errors already
// carrying a taxonomy sentinel pass through unchanged.
func Map(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrStoreUnavailable):
		return err

	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)

	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)

	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)

	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}

// HTTPStatus maps a taxonomy error onto an HTTP status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
