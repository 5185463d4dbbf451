package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStorageUnavailable marks any failure of the durable store: network,
	// timeout, permission. It is never converted into an empty result.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrIdentityUnavailable marks a failure of the identity provider itself.
	ErrIdentityUnavailable = errors.New("identity provider unavailable")

	// ErrIdentityNotFound means no identity is registered for the phone number.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrUserNotFound means the local user row does not exist.
	ErrUserNotFound = errors.New("user not found")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field of a request at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Message
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
