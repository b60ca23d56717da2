package auth

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const credentialsEnv = "GOOGLE_APPLICATION_CREDENTIALS"

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Credentials is the process-wide credential handle. It is loaded once and
// immutable afterwards, so it can be shared freely.
type Credentials struct {
	// Path is the resolved absolute path of the key file.
	Path string

	creds *google.Credentials
}

// LoadCredentials resolves a service account key file and parses it.
// An empty path falls back to GOOGLE_APPLICATION_CREDENTIALS.
func LoadCredentials(ctx context.Context, path string) (*Credentials, error) {
	if path == "" {
		path = os.Getenv(credentialsEnv)
	}
	if path == "" {
		return nil, &ConfigError{Reason: "no credentials path provided and " + credentialsEnv + " not set"}
	}
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, &ConfigError{Reason: fmt.Sprintf("cannot resolve credentials path %s: %v", path, err)}
		}
		path = abs
	}
	log.Printf("Using credentials file at: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigError{Reason: "credentials file not found at: " + path}
		}
		return nil, &ConfigError{Reason: fmt.Sprintf("cannot read credentials file %s: %v", path, err)}
	}

	creds, err := google.CredentialsFromJSON(ctx, data, cloudPlatformScope)
	if err != nil {
		return nil, &CredentialError{Path: path, Err: err}
	}
	return &Credentials{Path: path, creds: creds}, nil
}

// ProjectID returns the project the key belongs to, when the key file
// carries one.
func (c *Credentials) ProjectID() string {
	if c.creds == nil {
		return ""
	}
	return c.creds.ProjectID
}

// clientOptions binds a service client to the handle.
func (c *Credentials) clientOptions() []option.ClientOption {
	return []option.ClientOption{option.WithCredentials(c.creds)}
}
