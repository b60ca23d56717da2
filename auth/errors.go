package auth

import (
	"errors"
	"fmt"
)

// ConfigError reports a missing or unresolvable credentials path.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }

// CredentialError reports a credentials file that could not be parsed
// into usable key material.
type CredentialError struct {
	Path string
	Err  error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("failed to load credentials from %s: %v", e.Path, e.Err)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// ClientInitError wraps a failure to construct a service client.
type ClientInitError struct {
	Service string
	Err     error
}

func (e *ClientInitError) Error() string {
	return fmt.Sprintf("failed to create %s client: %v", e.Service, e.Err)
}

func (e *ClientInitError) Unwrap() error { return e.Err }

// IsAuthError reports whether err belongs to the credential/config/client-init
// taxonomy, i.e. whether the caller-facing message should read as an
// authentication failure.
func IsAuthError(err error) bool {
	var (
		cfg  *ConfigError
		cred *CredentialError
		init *ClientInitError
	)
	return errors.As(err, &cfg) || errors.As(err, &cred) || errors.As(err, &init)
}
