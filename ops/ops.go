// Package ops is the orchestration layer the test suites invoke: each
// operation makes one domain service call, runs the validators that apply to
// it, reports metadata to the configured reporter, and returns a simplified
// result. Transport and local validation errors propagate as Go errors;
// assertion mismatches are collected in Result.Failures.
package ops

import (
	"errors"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/restharness/fixture-api-tests/apiclient"
	"github.com/restharness/fixture-api-tests/config"
	"github.com/restharness/fixture-api-tests/logging"
	"github.com/restharness/fixture-api-tests/reporter"
	"github.com/restharness/fixture-api-tests/services"
)

// Env bundles the collaborators every operation needs. Build one per test
// worker; it is read-only afterwards.
type Env struct {
	Users    *services.Users
	Posts    *services.Posts
	Comments *services.Comments
	Reporter reporter.Reporter
	Config   config.Config
	Logger   *logging.Logger
}

// NewEnv wires the services against a single client and configuration.
func NewEnv(cfg config.Config, logger *logging.Logger) *Env {
	client := apiclient.New(cfg, logger.ForComponent("http"))
	return &Env{
		Users:    services.NewUsers(client, cfg, logger),
		Posts:    services.NewPosts(client, cfg, logger),
		Comments: services.NewComments(client, cfg, logger),
		Reporter: reporter.New(cfg, logger.ForComponent("reporter")),
		Config:   cfg,
		Logger:   logger,
	}
}

// Result is the simplified outcome of one operation.
type Result[T any] struct {
	Status   int
	Data     T
	Duration time.Duration
	Failures []error
}

// OK reports whether every validator passed.
func (r Result[T]) OK() bool { return len(r.Failures) == 0 }

// Err joins all validator failures into a single error, or nil.
func (r Result[T]) Err() error { return errors.Join(r.Failures...) }

func finish[T any](env *Env, op string, resp *apiclient.Response[T], checks ...error) Result[T] {
	r := Result[T]{Status: resp.Status, Data: resp.Data, Duration: resp.Duration}
	for _, c := range checks {
		if c != nil {
			r.Failures = append(r.Failures, c)
		}
	}

	env.Reporter.AttachPerformanceMetrics(op, ldvalue.ObjectBuild().
		Set("status", ldvalue.Int(resp.Status)).
		Set("durationMs", ldvalue.Int(int(resp.Duration.Milliseconds()))).
		Build())
	env.Reporter.AttachValidationResults(op, validationValue(r.Failures))

	if r.OK() {
		env.Logger.Debugf("%s ok: status=%d duration=%dms", op, r.Status, r.Duration.Milliseconds())
	} else {
		env.Logger.Warnf("%s had %d validation failure(s)", op, len(r.Failures))
	}
	return r
}

func validationValue(failures []error) ldvalue.Value {
	messages := ldvalue.ArrayBuild()
	for _, f := range failures {
		messages.Add(ldvalue.String(f.Error()))
	}
	return ldvalue.ObjectBuild().
		Set("passed", ldvalue.Bool(len(failures) == 0)).
		Set("failures", messages.Build()).
		Build()
}
