// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/dohook/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unknown_event_type",
			code:    errors.ErrUnknownEventType,
			message: "no handlers for 'task.abort'",
			wantStr: "[UNKNOWN_EVENT_TYPE] no handlers for 'task.abort'",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "handler cannot be nil",
			wantStr: "[INVALID_INPUT] handler cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrDuplicateRegistration, "%s already registered for %s", "onStart", "manager.startup")
	assert.Equal(t, "onStart already registered for manager.startup", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigLoad, "cannot load config")

		assert.Equal(t, errors.ErrConfigLoad, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[CONFIG_LOAD] cannot load config: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDuplicateRegistration, "duplicate").
		WithDetail("handler", "onStart").
		WithDetail("event", "manager.startup")

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "onStart", details["handler"])
	assert.Equal(t, "manager.startup", details["event"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrUnknownEventType, "error 1")
	err2 := errors.New(errors.ErrUnknownEventType, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2), "same code should match")
	assert.False(t, err1.Is(err3), "different codes should not match")
	assert.True(t, stderrors.Is(err1, err2), "errors.Is should work with DohookError")
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrUnknownEventType, "unknown"),
			code:     errors.ErrUnknownEventType,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrUnknownEventType, "unknown"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrConfigParse, "bad toml"),
			code:     errors.ErrConfigParse,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrDuplicateRegistration, errors.GetErrorCode(errors.New(errors.ErrDuplicateRegistration, "dup")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	parseErr := errors.Wrap(rootCause, errors.ErrConfigParse, "cannot parse dohook.toml")
	loadErr := errors.Wrap(parseErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(loadErr, errors.ErrConfigLoad))

	var middle *errors.DohookError
	require.True(t, stderrors.As(loadErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrConfigParse, middle.Code)

	assert.ErrorIs(t, loadErr, rootCause)
}
