package vectara

import (
	"fmt"
	"strings"
)

// RemoteError is returned when the upstream call fails at the transport
// level or with a non-success HTTP status.
type RemoteError struct {
	StatusCode int
	Message    string
	cause      error
}

func (e *RemoteError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("vectara query failed: http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("vectara query failed: %s", e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.cause
}

// InvalidResponseError is returned when the upstream call succeeded at the
// HTTP level but the payload is unusable: it carries explicit field errors
// or warning messages, or the summary is missing or empty.
type InvalidResponseError struct {
	Reason      string
	FieldErrors map[string]string
	Messages    []string
}

func (e *InvalidResponseError) Error() string {
	parts := []string{e.Reason}
	for field, msg := range e.FieldErrors {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	parts = append(parts, e.Messages...)
	return "invalid vectara response: " + strings.Join(parts, "; ")
}
