package errors

import (
	stderrors "errors"
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NetworkError is the single failure kind surfaced by the API client. Timeouts,
// transport failures, non-2xx statuses and undecodable bodies all map to it;
// Status is zero when no response was received.
type NetworkError struct {
	Endpoint string
	Status   int
	Err      error
}

// NewNetworkError constructs a NetworkError for the given endpoint.
func NewNetworkError(endpoint string, status int, err error) error {
	return &NetworkError{Endpoint: endpoint, Status: status, Err: err}
}

func (e *NetworkError) Error() string {
	if e == nil {
		return ""
	}
	if e.Status != 0 {
		return fmt.Sprintf("network error [%s]: unexpected status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("network error [%s]: %v", e.Endpoint, e.Err)
}

// Unwrap exposes the underlying error.
func (e *NetworkError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsNetworkError reports whether err wraps a NetworkError.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return stderrors.As(err, &netErr)
}
