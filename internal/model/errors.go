package model

import (
	"fmt"
	"net/http"
)

// ValidationError reports an empty or malformed required field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SyncError reports a failed call to the remote endpoint.
type SyncError struct {
	Action string
	// Status is the HTTP status when the endpoint answered, 0 otherwise.
	Status int
	Err    error
}

func (e *SyncError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("sync %s failed (%d %s): %v", e.Action, e.Status, http.StatusText(e.Status), e.Err)
	}
	return fmt.Sprintf("sync %s failed: %v", e.Action, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a referenced book or sentence that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// FormatError reports an import file that cannot be used at all.
type FormatError struct {
	Sheet string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("invalid import file: %q sheet: %v", e.Sheet, e.Err)
	}
	return fmt.Sprintf("invalid import file: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
