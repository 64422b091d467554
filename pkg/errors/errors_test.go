package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("content.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "content.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: content.yaml:12: unexpected token", err.Error())
}

func TestYAMLParseErrorExtractsLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		line int
	}{
		{name: "with line", err: stdErrors.New("yaml: line 7: did not find expected key"), line: 7},
		{name: "without line", err: stdErrors.New("yaml: unmarshal errors"), line: 0},
		{name: "nil", err: nil, line: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewYAMLParseError("config.yaml", tt.err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, tt.line, parseErr.Line)
		})
	}
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("projects[1].title", "is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "projects[1].title", validationErr.Field)
	require.Equal(t, "validation error: projects[1].title: is required", err.Error())
}

func TestValidationErrorsAggregate(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "email", Message: "must be a valid email address"},
	}

	var err error = errs
	require.Contains(t, err.Error(), "name: is required")
	require.Contains(t, err.Error(), "email: must be a valid email address")

	var first *ValidationError
	require.ErrorAs(t, err, &first)
	require.Equal(t, "name", first.Field)

	emailErr, ok := errs.Field("email")
	require.True(t, ok)
	require.Equal(t, "must be a valid email address", emailErr.Message)

	_, ok = errs.Field("message")
	require.False(t, ok)
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	require.Equal(t, "", parseErr.Error())
	require.Equal(t, "", validationErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Equal(t, "", ValidationErrors(nil).Error())
}
