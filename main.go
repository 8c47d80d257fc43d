package main

import (
	"fmt"
	"os"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/restharness/fixture-api-tests/apitests"
	"github.com/restharness/fixture-api-tests/config"
	"github.com/restharness/fixture-api-tests/framework"
	"github.com/restharness/fixture-api-tests/healthcheck"
	"github.com/restharness/fixture-api-tests/logging"
	"github.com/restharness/fixture-api-tests/ops"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args) {
		return 1
	}

	cfg, err := config.Load(params.configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		return 1
	}
	applyOverrides(&cfg, params)

	if params.healthCheck {
		if healthcheck.RunAll(healthcheck.Checks(cfg, params.configFile), os.Stdout) {
			return 0
		}
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		return 1
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		return 1
	}
	if params.debugAll {
		level = logging.Debug
	}

	logger := logging.NewLogger(os.Stdout, level)
	env := ops.NewEnv(cfg, logger)

	fmt.Printf("Running tests against %s (environment %q)\n", cfg.BaseURL, cfg.EnvironmentName)
	framework.PrintFilterDescription(os.Stdout, params.filters)
	fmt.Println()

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := apitests.RunTestSuite(env, params.filters.AsFilter, testLogger)

	env.Reporter.AttachTestSummary(ldvalue.ObjectBuild().
		Set("total", ldvalue.Int(len(results.Tests))).
		Set("failures", ldvalue.Int(len(results.Failures))).
		Set("passed", ldvalue.Bool(results.OK())).
		Build())

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Printf("\nTo rerun only the failed tests:\n  %s\n",
			rerunCommand(args[0], params, results.Failures))
		return 1
	}
	return 0
}

// applyOverrides layers command-line flags over the loaded configuration;
// flags always win.
func applyOverrides(cfg *config.Config, params commandParams) {
	if params.baseURL != "" {
		cfg.BaseURL = params.baseURL
	}
	if params.webBaseURL != "" {
		cfg.WebBaseURL = params.webBaseURL
	}
	if params.envName != "" {
		cfg.EnvironmentName = params.envName
	}
	if params.logLevel != "" {
		cfg.LogLevel = params.logLevel
	}
	if params.reportingURL != "" {
		cfg.ReportingURL = params.reportingURL
	}
	if params.batchSize > 0 {
		cfg.BatchSize = params.batchSize
	}
}
