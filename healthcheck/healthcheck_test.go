package healthcheck

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restharness/fixture-api-tests/config"
)

func init() {
	color.NoColor = true
}

func validConfig(baseURL string) config.Config {
	return config.Config{BaseURL: baseURL, TimeoutMs: 1000, BatchSize: 5}
}

func TestAllChecksPassAgainstReachableAPI(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "harness.yaml")
	require.NoError(t, os.WriteFile(path, []byte("baseUrl: "+server.URL+"\n"), 0600))

	var out bytes.Buffer
	healthy := RunAll(Checks(validConfig(server.URL), path), &out)

	assert.True(t, healthy, out.String())
	assert.Contains(t, out.String(), "PASS runtime version")
	assert.Contains(t, out.String(), "PASS configuration")
	assert.Contains(t, out.String(), "PASS directory structure")
	assert.Contains(t, out.String(), "PASS fixture API reachability")
}

func TestNon2xxStatusStillCountsAsReachable(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(503))
	defer server.Close()

	assert.NoError(t, checkReachable(validConfig(server.URL)))
}

func TestMissingConfigurationFailsCheck(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	defer server.Close()

	cfg := validConfig(server.URL)
	cfg.BaseURL = "" // required key absent

	var out bytes.Buffer
	healthy := RunAll(Checks(cfg, ""), &out)
	assert.False(t, healthy)
	assert.Contains(t, out.String(), "FAIL configuration")
}

func TestUnreachableAPIFailsCheck(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	server.Close() // nothing listening

	old := reachabilityTimeout
	reachabilityTimeout = 200 * time.Millisecond
	defer func() { reachabilityTimeout = old }()

	err := checkReachable(validConfig(server.URL))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestMissingConfigFileFailsDirectoryCheck(t *testing.T) {
	err := checkDirectories(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	assert.NoError(t, checkDirectories(""))
}

func TestRuntimeVersionCheckAcceptsCurrentRuntime(t *testing.T) {
	assert.NoError(t, checkRuntimeVersion())
}
