// Package apperr defines the error taxonomy shared by the validation,
// repository and service layers. Handlers translate these into transport
// status codes; nothing in here is retried internally.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a lookup by id or natural key matches no
// record. Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")

// ErrInvalidCredentials is returned on login failure. The same value covers
// both an unknown email and a wrong password so callers cannot enumerate
// accounts.
var ErrInvalidCredentials = errors.New("invalid email or password")

// FieldError describes one violated rule on one field. MessageID and
// TemplateData feed the i18n bundle; Message carries the already rendered
// default-language text for callers that skip localization.
type FieldError struct {
	Field        string         `json:"field"`
	MessageID    string         `json:"-"`
	TemplateData map[string]any `json:"-"`
	Message      string         `json:"message"`
}

// ValidationError enumerates every violated field rule of a payload. It is
// never partial: the validator collects all per-field failures before
// returning.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field failure.
func (e *ValidationError) Add(field, messageID, message string, data map[string]any) {
	e.Fields = append(e.Fields, FieldError{
		Field:        field,
		MessageID:    messageID,
		TemplateData: data,
		Message:      message,
	})
}

// HasErrors reports whether any rule was violated.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// DuplicateKeyError is a uniqueness violation on write, mapped back to the
// offending natural-key field. It is a user-correctable conflict, not a
// transient fault.
type DuplicateKeyError struct {
	Entity string
	Field  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Entity, e.Field)
}

// InfrastructureError wraps a storage connection or query failure. It is
// fatal for the request that produced it and is never retried by this layer.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("infrastructure failure during %s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDuplicateKey reports whether err is (or wraps) a DuplicateKeyError.
func IsDuplicateKey(err error) bool {
	var de *DuplicateKeyError
	return errors.As(err, &de)
}
