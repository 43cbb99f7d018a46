package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidArgumentError(t *testing.T) {
	err := &InvalidArgumentError{
		Field:  "year",
		Reason: "must be between 1950 and 2025, got 1802",
	}

	require.Equal(
		t,
		`invalid argument "year": must be between 1950 and 2025, got 1802`,
		err.Error(),
	)
	require.True(t, err.IsServerError())
}

func TestUnknownToolError(t *testing.T) {
	err := &UnknownToolError{Name: "get_populations"}

	require.Equal(t, "unknown tool: get_populations", err.Error())
	require.True(t, err.IsServerError())
}

func TestUpstreamError_WithStatusCode(t *testing.T) {
	err := &UpstreamError{StatusCode: 503}

	require.Equal(t, "UNHCR API error: unexpected status 503", err.Error())
	require.NoError(t, err.Unwrap())
	require.True(t, err.IsServerError())
}

func TestUpstreamError_WithUnderlyingError(t *testing.T) {
	root := errors.New("dial failed")
	err := &UpstreamError{Err: root}

	require.Equal(t, "UNHCR API error: dial failed", err.Error())
	require.ErrorIs(t, err, root)
	require.True(t, err.IsServerError())
}

func TestUpstreamError_As(t *testing.T) {
	var target *UpstreamError

	err := error(&UpstreamError{StatusCode: 500})

	require.ErrorAs(t, err, &target)
	require.Equal(t, 500, target.StatusCode)
}
