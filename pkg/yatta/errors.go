package yatta

import (
	"errors"
	"fmt"
)

// Client lifecycle and upstream errors
var (
	// ErrNotStarted is returned when a request is issued before Start is
	// called. This is a programming error, not a transient condition.
	ErrNotStarted = errors.New("yatta: client not started, call Start before making requests")

	// ErrDataNotFound is returned when the API answers 404 for a resource.
	ErrDataNotFound = errors.New("yatta: data not found")

	// ErrConnectionTimeout is returned when the API answers 522.
	ErrConnectionTimeout = errors.New("yatta: connection to the API timed out")
)

// APIError is returned for any non-200 status that has no dedicated
// sentinel. The raw status code is kept for caller diagnostics.
type APIError struct {
	Code int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yatta: API request failed with status code %d", e.Code)
}

// classifyStatus maps an HTTP status code to a domain error. The mapping is
// a fixed table: 404 and 522 have dedicated sentinels, everything else
// non-200 carries its raw code.
func classifyStatus(code int) error {
	switch code {
	case 200:
		return nil
	case 404:
		return ErrDataNotFound
	case 522:
		return ErrConnectionTimeout
	default:
		return &APIError{Code: code}
	}
}

// PayloadError reports a record that could not be mapped from the server
// payload, usually a sign of an upstream schema change.
type PayloadError struct {
	Entity string
	Field  string
	Err    error
}

func (e *PayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("yatta: malformed %s payload at field %q: %v", e.Entity, e.Field, e.Err)
	}
	return fmt.Sprintf("yatta: malformed %s payload at field %q", e.Entity, e.Field)
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}

func payloadErr(entity, field string, err error) error {
	return &PayloadError{Entity: entity, Field: field, Err: err}
}
