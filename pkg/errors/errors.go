package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Client-side error taxonomy: every failed network call or rejected input
// maps onto one of these sentinels so callers can branch with errors.Is.

var (
	// ErrValidation indicates input was rejected before any network call
	ErrValidation = errors.New("validation failed")

	// ErrUploadFailed indicates the asset host rejected or dropped an upload
	ErrUploadFailed = errors.New("upload failed")

	// ErrSubmitFailed indicates the backend rejected a publish/update call
	ErrSubmitFailed = errors.New("submit failed")

	// ErrFetchFailed indicates a read from the backend failed
	ErrFetchFailed = errors.New("fetch failed")

	// ErrNotFound indicates a requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates a missing or expired session
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError creates a validation error naming the offending field
func ValidationError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrValidation)
}

// UploadError wraps an asset-host failure with the file name for context
func UploadError(fileName string, err error) error {
	return fmt.Errorf("%s: %v: %w", fileName, err, ErrUploadFailed)
}

// SubmitError carries the backend's message verbatim when one was returned
func SubmitError(serverMessage string) error {
	if serverMessage == "" {
		return ErrSubmitFailed
	}
	return fmt.Errorf("%s: %w", serverMessage, ErrSubmitFailed)
}

// SubmitMessage extracts the server message a SubmitError carries, without
// the sentinel suffix. Returns "" when the failure carried no message.
func SubmitMessage(err error) string {
	if !errors.Is(err, ErrSubmitFailed) {
		return ""
	}
	msg := strings.TrimSuffix(err.Error(), ": "+ErrSubmitFailed.Error())
	if msg == ErrSubmitFailed.Error() {
		return ""
	}
	return msg
}

// FetchError wraps a failed read with the resource being loaded
func FetchError(resource string, err error) error {
	return fmt.Errorf("%s: %v: %w", resource, err, ErrFetchFailed)
}

// NotFoundError creates a not found error with context
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}
