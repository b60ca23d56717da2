// Package request validates and normalizes caller-supplied tool parameters.
// Validators are pure functions: no I/O happens before a request record is
// accepted.
package request

import (
	"fmt"
	"regexp"
	"time"
)

// ValidationError reports a parameter that violated a constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

var (
	projectIDPattern    = regexp.MustCompile(`^[A-Za-z0-9_-]{6,63}$`)
	bucketNamePattern   = regexp.MustCompile(`^[a-z0-9._-]{3,63}$`)
	instanceNamePattern = regexp.MustCompile(`^[a-z0-9-]{1,63}$`)
)

const (
	// MinDiskSizeGB and MaxDiskSizeGB bound boot disk sizes.
	MinDiskSizeGB = 10
	MaxDiskSizeGB = 65536
)

// ValidProjectID checks the 6-63 character, alnum/hyphen/underscore rule.
func ValidProjectID(id string) error {
	if !projectIDPattern.MatchString(id) {
		return &ValidationError{
			Field:  "project_id",
			Reason: "must be 6-63 characters of letters, numbers, hyphens, and underscores",
		}
	}
	return nil
}

// ValidBucketName checks the 3-63 character lowercase bucket rule.
func ValidBucketName(name string) error {
	if !bucketNamePattern.MatchString(name) {
		return &ValidationError{
			Field:  "bucket_name",
			Reason: "must be 3-63 characters of lowercase letters, numbers, hyphens, underscores, and dots",
		}
	}
	return nil
}

// ValidInstanceName checks the 1-63 character lowercase/hyphen rule.
func ValidInstanceName(name string) error {
	if !instanceNamePattern.MatchString(name) {
		return &ValidationError{
			Field:  "instance_name",
			Reason: "must be 1-63 characters of lowercase letters, numbers, and hyphens",
		}
	}
	return nil
}

// ValidDiskSizeGB checks the [10, 65536] boot disk bound.
func ValidDiskSizeGB(size int64) error {
	if size < MinDiskSizeGB || size > MaxDiskSizeGB {
		return &ValidationError{
			Field:  "disk_size_gb",
			Reason: fmt.Sprintf("must be between %d and %d", MinDiskSizeGB, MaxDiskSizeGB),
		}
	}
	return nil
}

// ParseDate accepts an ISO date (2006-01-02) or a full RFC 3339 timestamp.
func ParseDate(field, value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, &ValidationError{
		Field:  field,
		Reason: "invalid date format, use ISO format (YYYY-MM-DD)",
	}
}
