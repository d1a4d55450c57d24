package forkify

import (
	"fmt"
	"time"
)

// TimeoutError reports a request abandoned because its deadline fired
// before the response arrived.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s took longer than %s", e.URL, e.Timeout)
}

// HTTPError reports a response that completed with a non-success status.
// Message carries the API error body's message field when present.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d", e.Status)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}
