package tools

import (
	"errors"

	"gcpkit/auth"
	"gcpkit/request"
)

// Wrap normalizes a handler outcome into the caller-facing contract: the
// typed value on success, an ErrorResponse on any failure. Callers of Wrap
// never observe a Go error.
func Wrap(v any, err error) any {
	if err == nil {
		return v
	}
	var verr *request.ValidationError
	if errors.As(err, &verr) {
		return ErrorResponse{Error: "Invalid input: " + verr.Error()}
	}
	if auth.IsAuthError(err) {
		return ErrorResponse{Error: "Authentication failed: " + err.Error()}
	}
	return ErrorResponse{Error: err.Error()}
}
