// Package framework contains the low-level test harness infrastructure that is
// independent of what is being tested.
//
// The general model is:
//
// 1. The harness runs a tree of named tests against an external REST fixture
// API. Each test gets a Context which is similar to Go's *testing.T, allowing a
// piece of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// 2. Tests can be included or excluded by regex filters supplied on the command
// line.
//
// 3. Everything a test logs through its debug logger is captured per test, so
// the console reporter can dump it for failed tests only.
//
// The domain-specific code that knows about users, posts and comments lives
// above this package and provides the operations and validators each test runs.
package framework
