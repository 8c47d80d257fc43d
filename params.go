package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/restharness/fixture-api-tests/framework"
)

type commandParams struct {
	configFile   string
	baseURL      string
	webBaseURL   string
	envName      string
	logLevel     string
	reportingURL string
	batchSize    int
	filters      framework.RegexFilters
	healthCheck  bool
	debug        bool
	debugAll     bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.configFile, "config", "", "path to an optional YAML config file")
	fs.StringVar(&c.baseURL, "url", "", "fixture API base URL (overrides config/env)")
	fs.StringVar(&c.webBaseURL, "web-url", "", "web base URL (overrides config/env)")
	fs.StringVar(&c.envName, "env-name", "", "environment name attached to reported results")
	fs.StringVar(&c.logLevel, "log-level", "", "minimum log level: debug, info, warn, error")
	fs.StringVar(&c.reportingURL, "reporting-url", "", "test-management endpoint for attachments (optional)")
	fs.IntVar(&c.batchSize, "batch-size", 0, "batch size for bulk creation (overrides config)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.healthCheck, "healthcheck", false, "run startup health checks and exit")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a copy-pastable command line that reruns exactly the
// tests that failed.
func rerunCommand(programName string, params commandParams, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(programName)
	if params.configFile != "" {
		b.add("-config", params.configFile)
	}
	if params.baseURL != "" {
		b.add("-url", params.baseURL)
	}
	b.add("-debug")
	for _, f := range failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	return b.String()
}
