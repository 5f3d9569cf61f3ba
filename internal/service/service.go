// Package service holds the use-case layer: validation, storage
// orchestration, and the rules the handlers expose over HTTP.
package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError carries the per-field messages of a rejected submission.
// Handlers translate it into a 400 response with the field->message map.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Errors))
}

// ListResult is the service-level DTO for paginated listings.
type ListResult[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 5
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
