// Package healthcheck verifies that the harness can run at all before any
// test is attempted: runtime version, configuration presence, expected file
// layout, and reachability of the configured fixture API.
package healthcheck

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/restharness/fixture-api-tests/config"
)

const minimumGoMinor = 21

// reachabilityTimeout bounds the startup poll against the fixture API.
var reachabilityTimeout = 10 * time.Second

// Check is one named health check.
type Check struct {
	Name string
	Run  func() error
}

// Checks builds the standard check list for the given configuration.
// configPath may be empty when no config file was used.
func Checks(cfg config.Config, configPath string) []Check {
	return []Check{
		{Name: "runtime version", Run: checkRuntimeVersion},
		{Name: "configuration", Run: cfg.Validate},
		{Name: "directory structure", Run: func() error { return checkDirectories(configPath) }},
		{Name: "fixture API reachability", Run: func() error { return checkReachable(cfg) }},
	}
}

// RunAll executes every check, printing one PASS/FAIL line per check.
// It returns true only if every check passed; the CLI turns that into the
// process exit code.
func RunAll(checks []Check, out io.Writer) bool {
	pass := color.New(color.FgGreen).Sprint("PASS")
	fail := color.New(color.FgRed, color.Bold).Sprint("FAIL")

	healthy := true
	for _, c := range checks {
		if err := c.Run(); err != nil {
			healthy = false
			fmt.Fprintf(out, "%s %s: %s\n", fail, c.Name, err)
		} else {
			fmt.Fprintf(out, "%s %s\n", pass, c.Name)
		}
	}
	return healthy
}

func checkRuntimeVersion() error {
	v := runtime.Version() // e.g. "go1.21.5"
	trimmed := strings.TrimPrefix(v, "go")
	parts := strings.Split(trimmed, ".")
	if len(parts) < 2 {
		// Development and gccgo builds report unparseable versions; accept them.
		return nil
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}
	if parts[0] != "1" || minor >= minimumGoMinor {
		return nil
	}
	return fmt.Errorf("go runtime %s is older than the minimum go1.%d", v, minimumGoMinor)
}

func checkDirectories(configPath string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory is not accessible: %w", err)
	}
	if _, err := os.Stat(wd); err != nil {
		return fmt.Errorf("working directory %s is not accessible: %w", wd, err)
	}
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return fmt.Errorf("config file %s: %w", configPath, err)
		}
		if _, err := os.Stat(filepath.Dir(configPath)); err != nil {
			return fmt.Errorf("config directory: %w", err)
		}
	}
	return nil
}

// checkReachable polls the base URL until it responds or the deadline
// passes. Any HTTP status counts as reachable; only transport failures do
// not.
func checkReachable(cfg config.Config) error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("no base URL configured")
	}
	client := &http.Client{Timeout: cfg.Timeout()}
	deadline := time.Now().Add(reachabilityTimeout)
	var lastErr error
	for {
		resp, err := client.Get(cfg.BaseURL)
		if err == nil {
			_ = resp.Body.Close()
			return nil
		}
		lastErr = err
		if !time.Now().Before(deadline) {
			return fmt.Errorf("fixture API at %s is unreachable: %w", cfg.BaseURL, lastErr)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
