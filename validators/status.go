// Package validators contains the stateless assertion helpers the operations
// layer chains over response envelopes and payloads. Every validator is a
// pure function returning nil on success and a descriptive error on failure;
// the caller decides whether that error fails a test.
package validators

import (
	"fmt"

	"github.com/restharness/fixture-api-tests/apiclient"
)

// ExpectStatus checks the envelope's HTTP status against an exact expected
// value.
func ExpectStatus[T any](resp *apiclient.Response[T], expected int) error {
	if resp.Status != expected {
		return fmt.Errorf("expected status %d, got %d", expected, resp.Status)
	}
	return nil
}

// ExpectSuccess checks for any 2xx status.
func ExpectSuccess[T any](resp *apiclient.Response[T]) error {
	if !resp.IsSuccess() {
		return fmt.Errorf("expected a 2xx status, got %d", resp.Status)
	}
	return nil
}
