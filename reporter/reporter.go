// Package reporter forwards structured test metadata to an external
// test-management system. The Reporter capability is selected once at
// configuration time: a reporting URL yields the HTTP implementation, no URL
// yields the no-op. Reporting must never fail a test, so implementations
// swallow delivery problems and only log them.
package reporter

import (
	"bytes"
	"net/http"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/restharness/fixture-api-tests/config"
	"github.com/restharness/fixture-api-tests/framework"
)

// Reporter is the narrow attachment interface the harness needs from a
// test-management integration.
type Reporter interface {
	AttachTestContext(testID string, context ldvalue.Value)
	AttachTestSummary(summary ldvalue.Value)
	AttachValidationResults(testID string, results ldvalue.Value)
	AttachPerformanceMetrics(testID string, metrics ldvalue.Value)
}

// New selects the Reporter implementation from the configuration snapshot.
func New(cfg config.Config, logger framework.Logger) Reporter {
	if cfg.ReportingURL == "" {
		return Noop{}
	}
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &HTTPReporter{
		url:         cfg.ReportingURL,
		environment: cfg.EnvironmentName,
		httpClient:  &http.Client{Timeout: cfg.Timeout()},
		logger:      logger,
	}
}

// Noop is the fallback used when no test-management system is configured.
type Noop struct{}

func (Noop) AttachTestContext(string, ldvalue.Value)        {}
func (Noop) AttachTestSummary(ldvalue.Value)                {}
func (Noop) AttachValidationResults(string, ldvalue.Value)  {}
func (Noop) AttachPerformanceMetrics(string, ldvalue.Value) {}

// HTTPReporter posts each attachment as a JSON document to the configured
// endpoint.
type HTTPReporter struct {
	url         string
	environment string
	httpClient  *http.Client
	logger      framework.Logger
}

func (r *HTTPReporter) AttachTestContext(testID string, context ldvalue.Value) {
	r.send("testContext", testID, context)
}

func (r *HTTPReporter) AttachTestSummary(summary ldvalue.Value) {
	r.send("testSummary", "", summary)
}

func (r *HTTPReporter) AttachValidationResults(testID string, results ldvalue.Value) {
	r.send("validationResults", testID, results)
}

func (r *HTTPReporter) AttachPerformanceMetrics(testID string, metrics ldvalue.Value) {
	r.send("performanceMetrics", testID, metrics)
}

func (r *HTTPReporter) send(kind, testID string, data ldvalue.Value) {
	doc := ldvalue.ObjectBuild().
		Set("type", ldvalue.String(kind)).
		Set("testId", ldvalue.String(testID)).
		Set("environment", ldvalue.String(r.environment)).
		Set("timestamp", ldvalue.String(time.Now().UTC().Format(time.RFC3339))).
		Set("data", data).
		Build()

	resp, err := r.httpClient.Post(r.url, "application/json", bytes.NewReader([]byte(doc.JSONString())))
	if err != nil {
		r.logger.Printf("WARN: could not deliver %s attachment: %s", kind, err)
		return
	}
	_ = resp.Body.Close()
	if resp.StatusCode >= 300 {
		r.logger.Printf("WARN: reporting endpoint returned status %d for %s attachment", resp.StatusCode, kind)
	}
}
