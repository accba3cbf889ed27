// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is / errors.As to
// match these values.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth-specific errors.
	ErrorUserNotFound     = errors.New("user not found")
	ErrorNotAuthenticated = errors.New("not authenticated")
)

// FieldIssue describes one invalid request field. Path mirrors the wire
// format of the validation response: a list of path segments pointing at
// the offending field.
type FieldIssue struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// ValidationError aggregates per-field issues for a malformed request.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		msgs = append(msgs, strings.Join(i.Path, ".")+": "+i.Message)
	}
	return "validation error: " + strings.Join(msgs, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Issues: []FieldIssue{{Path: []string{field}, Message: message}}}
}
