// Package apitests contains the fixture API test specifications themselves
// and their supporting test API.
//
// Harness infrastructure that is not specific to the fixture API domain, such
// as result collection and test filtering, is in the lower-level framework
// package; the operations the tests invoke are in ops.
package apitests
