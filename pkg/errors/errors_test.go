// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "error with cause",
			err: &Error{
				Type:    ErrInvalidArgument,
				Message: "test message",
				Cause:   errors.New("underlying error"),
			},
			want: "invalid_argument: test message: underlying error",
		},
		{
			name: "error without cause",
			err: &Error{
				Type:    ErrNotManaged,
				Message: "test message",
				Cause:   nil,
			},
			want: "not_managed: test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying error")
	err := NewIOError("test message", cause)
	assert.Equal(t, cause, err.Unwrap())
	assert.ErrorIs(t, err, cause)

	errNoCause := NewInternalError("test message", nil)
	assert.Nil(t, errNoCause.Unwrap())
}

func TestErrorTypeChecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		checkFn func(error) bool
	}{
		{"invalid argument", NewInvalidArgumentError("x", nil), IsInvalidArgument},
		{"not found", NewNotFoundError("x", nil), IsNotFound},
		{"not managed", NewNotManagedError("x", nil), IsNotManaged},
		{"host environment", NewHostEnvironmentError("x", nil), IsHostEnvironment},
		{"io", NewIOError("x", nil), IsIO},
		{"internal", NewInternalError("x", nil), IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, tt.checkFn(tt.err))
			assert.True(t, tt.checkFn(fmt.Errorf("wrapped: %w", tt.err)), "check should see through wrapping")
			assert.False(t, tt.checkFn(errors.New("plain")))
			assert.False(t, tt.checkFn(nil))
		})
	}

	assert.False(t, IsNotFound(NewNotManagedError("x", nil)))
}
