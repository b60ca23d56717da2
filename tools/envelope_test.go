package tools

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcpkit/auth"
	"gcpkit/request"
)

func TestWrapPassesValueThrough(t *testing.T) {
	resp := &SuccessResponse{Message: "done", Success: true}
	assert.Equal(t, resp, Wrap(resp, nil))
}

func TestWrapValidationError(t *testing.T) {
	err := &request.ValidationError{Field: "project_id", Reason: "must be 6-63 characters of letters, numbers, hyphens, and underscores"}
	out := Wrap(nil, err)
	envelope, ok := out.(ErrorResponse)
	require.True(t, ok)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Invalid input: project_id must be 6-63 characters of letters, numbers, hyphens, and underscores", envelope.Error)
}

func TestWrapAuthError(t *testing.T) {
	err := &auth.ConfigError{Reason: "no credentials path provided and GOOGLE_APPLICATION_CREDENTIALS not set"}
	out := Wrap(nil, err)
	envelope, ok := out.(ErrorResponse)
	require.True(t, ok)
	assert.Contains(t, envelope.Error, "Authentication failed: ")
}

func TestWrapProviderError(t *testing.T) {
	err := providerErr("list buckets", errors.New("rpc error: deadline exceeded"))
	out := Wrap(nil, err)
	envelope, ok := out.(ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, "Failed to list buckets: rpc error: deadline exceeded", envelope.Error)
}
