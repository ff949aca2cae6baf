// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/openresume/resume-builder/internal/export"
	"github.com/openresume/resume-builder/internal/storage"
)

// ErrSnapshotNotFound indicates a saved resume was not found
type ErrSnapshotNotFound struct {
	ID string
}

func (e *ErrSnapshotNotFound) Error() string {
	return fmt.Sprintf("snapshot not found: %s", e.ID)
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
	var snapshotErr *ErrSnapshotNotFound
	var validationErr *ErrValidation
	switch {
	case errors.As(err, &snapshotErr):
		return http.StatusNotFound
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, export.ErrExportInFlight):
		return http.StatusConflict
	case errors.Is(err, storage.ErrInvalidJSON):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
