package openapi

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrMalformedDocument indicates the payload is not a parseable OpenAPI
	// document.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrMissingComponents indicates the document has no components/schemas
	// mapping.
	ErrMissingComponents = errors.New("missing components/schemas")
)

// DocumentError is a fatal, document-level read failure. Kind is one of the
// sentinel errors above.
type DocumentError struct {
	Location string
	Kind     error
	Message  string
	Cause    error
}

func (e *DocumentError) Error() string {
	msg := "openapi reader: "
	if e.Location != "" {
		msg += e.Location + ": "
	}
	if e.Kind != nil {
		msg += e.Kind.Error()
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel recorded in Kind.
func (e *DocumentError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}
