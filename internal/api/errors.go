package api

import (
	"fmt"
	"strings"
)

// StatusError is returned when the backend answers with a non-2xx status.
// Message carries the "message" field of a JSON error body when there is one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unexpected status: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("unexpected status: %d", e.StatusCode)
}

// ContentTypeError is returned when a structured response was expected but the
// backend sent something else. Body holds the response text.
type ContentTypeError struct {
	ContentType string
	Body        string
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("unexpected response: %s", strings.TrimSpace(e.Body))
}
