package apiclient

import (
	"fmt"
	"time"
)

// NetworkError indicates a transport-level failure: connection refused, DNS
// failure, connection reset. It is never produced for a non-2xx status code;
// those are returned in the Response envelope for validators to interpret.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %s", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError indicates that no complete response arrived within the
// configured per-request timeout.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out after %s", e.URL, e.Timeout)
}
