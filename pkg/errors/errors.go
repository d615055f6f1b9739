// Package errors provides the error taxonomy for the lensmap system.
// The catalog core only ever reports one of a closed set of failure kinds
// (see Kind). The remaining types describe caller input problems and
// adapter details that are always wrapped by one of those kinds before
// they leave a provider or store.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are aliases for the standard library functions so callers only
// need to import this package.
var (
	Is = errors.Is
	As = errors.As
)

// Sentinel errors for the lensmap system.
var (
	// ErrNotFound indicates that a requested lens, camera, or rental was not found
	ErrNotFound = errors.New("not found")

	// ErrNetwork indicates that a catalog source could not be reached
	ErrNetwork = errors.New("network error")

	// ErrDataCorrupted indicates that catalog or preference data failed integrity checks
	ErrDataCorrupted = errors.New("data corrupted")

	// ErrMaxComparisonItemsReached indicates that the comparison set is full
	ErrMaxComparisonItemsReached = errors.New("maximum comparison items reached")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// Resource names used by NotFoundError.
const (
	ResourceLens   = "lens"
	ResourceCamera = "camera"
	ResourceRental = "rental"
)

// NotFoundError represents an error when a catalog record is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// NewLensNotFound creates a NotFoundError for a lens.
func NewLensNotFound(id string) *NotFoundError {
	return NewNotFoundError(ResourceLens, id)
}

// NewCameraNotFound creates a NotFoundError for a camera.
func NewCameraNotFound(id string) *NotFoundError {
	return NewNotFoundError(ResourceCamera, id)
}

// NewRentalNotFound creates a NotFoundError for a rental.
func NewRentalNotFound(id string) *NotFoundError {
	return NewNotFoundError(ResourceRental, id)
}

// NetworkError represents a transport failure talking to a catalog source.
type NetworkError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("network error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("network error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(message string, err error) *NetworkError {
	return &NetworkError{Message: message, Err: err}
}

// DataCorruptedError represents catalog or preference data that could not be
// decoded or failed validation.
type DataCorruptedError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *DataCorruptedError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("data corrupted: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("data corrupted: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *DataCorruptedError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DataCorruptedError) Is(target error) bool {
	return target == ErrDataCorrupted
}

// NewDataCorrupted creates a new DataCorruptedError
func NewDataCorrupted(message string, err error) *DataCorruptedError {
	return &DataCorruptedError{Message: message, Err: err}
}

// ValidationError represents invalid caller input, such as an empty lens ID.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// APIError represents a non-success response from a remote catalog API.
// Remote providers wrap it in a NetworkError or NotFoundError.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Endpoint, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "rename", "mkdir"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error of any resource
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNetwork checks if an error is a network error
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsDataCorrupted checks if an error is a data integrity error
func IsDataCorrupted(err error) bool {
	return errors.Is(err, ErrDataCorrupted)
}

// IsMaxComparisonItems checks if an error is the comparison capacity error
func IsMaxComparisonItems(err error) bool {
	return errors.Is(err, ErrMaxComparisonItemsReached)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps a decode failure as DataCorrupted with parse details.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewDataCorrupted("decoding "+file, NewParseError(format, file, err.Error(), err))
}
