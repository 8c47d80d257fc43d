package framework

import (
	"fmt"
	"strings"
	"time"
)

// Results is the accumulated outcome of a test run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult describes the outcome of a single test.
type TestResult struct {
	TestID   TestID
	Errors   []error
	Skipped  bool
	Duration time.Duration
}

// OK returns true if there were no failures.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TestID identifies a test by the path of Run names leading to it.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// TestFailure pairs a test identifier with one of its errors.
type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}
