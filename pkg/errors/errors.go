// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package errors provides the typed errors returned by mcp-config operations.
package errors

import (
	"errors"
	"fmt"
)

// Error types
const (
	// ErrInvalidArgument is returned when an invalid argument is provided
	ErrInvalidArgument = "invalid_argument"

	// ErrNotFound is returned when a server entry does not exist in a client config
	ErrNotFound = "not_found"

	// ErrNotManaged is returned when an operation targets an entry mcp-config does not own
	ErrNotManaged = "not_managed"

	// ErrHostEnvironment is returned when the host application is not installed or
	// its configuration directory is missing
	ErrHostEnvironment = "host_environment"

	// ErrIO is returned when a configuration file cannot be written
	ErrIO = "io"

	// ErrInternal is returned when there is an internal error
	ErrInternal = "internal"
)

// Error represents an error in the application
type Error struct {
	// Type is the error type
	Type string

	// Message is the error message
	Message string

	// Cause is the underlying error
	Cause error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error
func NewError(errorType, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidArgumentError creates a new invalid argument error
func NewInvalidArgumentError(message string, cause error) *Error {
	return NewError(ErrInvalidArgument, message, cause)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, cause error) *Error {
	return NewError(ErrNotFound, message, cause)
}

// NewNotManagedError creates a new not managed error
func NewNotManagedError(message string, cause error) *Error {
	return NewError(ErrNotManaged, message, cause)
}

// NewHostEnvironmentError creates a new host environment error
func NewHostEnvironmentError(message string, cause error) *Error {
	return NewError(ErrHostEnvironment, message, cause)
}

// NewIOError creates a new I/O error
func NewIOError(message string, cause error) *Error {
	return NewError(ErrIO, message, cause)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, cause error) *Error {
	return NewError(ErrInternal, message, cause)
}

// isType reports whether err, or any error it wraps, is an *Error of the given type.
func isType(err error, errorType string) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == errorType
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return isType(err, ErrInvalidArgument)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return isType(err, ErrNotFound)
}

// IsNotManaged checks if the error is a not managed error
func IsNotManaged(err error) bool {
	return isType(err, ErrNotManaged)
}

// IsHostEnvironment checks if the error is a host environment error
func IsHostEnvironment(err error) bool {
	return isType(err, ErrHostEnvironment)
}

// IsIO checks if the error is an I/O error
func IsIO(err error) bool {
	return isType(err, ErrIO)
}

// IsInternal checks if the error is an internal error
func IsInternal(err error) bool {
	return isType(err, ErrInternal)
}
