package apitests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/restharness/fixture-api-tests/framework"
	"github.com/restharness/fixture-api-tests/ops"
)

// T is the domain-specific test context the suites receive. It wraps the
// framework Context and carries the operations environment. It satisfies the
// interface testify's assert/require need, so tests can use those directly.
type T struct {
	context *framework.Context
	env     *ops.Env
}

// Run executes a named subtest and attaches the test's identity and target
// environment to the reporter.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		t1 := &T{context: c, env: t.env}
		t.env.Reporter.AttachTestContext(c.ID().String(), ldvalue.ObjectBuild().
			Set("environment", ldvalue.String(t.env.Config.EnvironmentName)).
			Set("baseUrl", ldvalue.String(t.env.Config.BaseURL)).
			Build())
		action(t1)
	})
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

func (t *T) FailNow() {
	t.context.FailNow()
}

func (t *T) Skip() {
	t.context.Skip()
}

func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

func (t *T) Debug(message string, args ...interface{}) {
	t.context.Debug(message, args...)
}

// Env exposes the operations environment for the current run.
func (t *T) Env() *ops.Env { return t.env }

// RequireOK fails the test immediately if the operation result carries any
// validator failures.
func RequireOK[R any](t *T, result ops.Result[R]) {
	if result.OK() {
		return
	}
	for _, f := range result.Failures {
		t.Errorf("%s", f)
	}
	t.FailNow()
}

// RequireNoError fails the test immediately on a transport or local
// validation error.
func RequireNoError(t *T, err error) {
	if err != nil {
		t.Errorf("unexpected error: %s", err)
		t.FailNow()
	}
}
