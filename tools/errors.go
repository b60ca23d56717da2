package tools

import "fmt"

// ProviderError wraps a failure coming back from a provider call. Op is the
// human-readable operation name used in the caller-facing message.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("Failed to %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func providerErr(op string, err error) error {
	return &ProviderError{Op: op, Err: err}
}
