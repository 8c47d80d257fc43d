package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restharness/fixture-api-tests/config"
	"github.com/restharness/fixture-api-tests/framework"
)

func TestReadParsesFlags(t *testing.T) {
	var params commandParams
	ok := params.Read([]string{"harness",
		"-url", "https://fixture.example.com",
		"-env-name", "staging",
		"-batch-size", "10",
		"-run", "^users",
		"-skip", "batch",
		"-debug",
	})
	require.True(t, ok)
	assert.Equal(t, "https://fixture.example.com", params.baseURL)
	assert.Equal(t, "staging", params.envName)
	assert.Equal(t, 10, params.batchSize)
	assert.True(t, params.debug)
	assert.True(t, params.filters.MustMatch.IsDefined())
	assert.True(t, params.filters.MustNotMatch.IsDefined())
}

func TestApplyOverridesFlagsWin(t *testing.T) {
	cfg := config.Config{BaseURL: "https://from-env", BatchSize: 5, LogLevel: "info"}
	applyOverrides(&cfg, commandParams{baseURL: "https://from-flag", batchSize: 7, logLevel: "debug"})

	assert.Equal(t, "https://from-flag", cfg.BaseURL)
	assert.Equal(t, 7, cfg.BatchSize)
	assert.Equal(t, "debug", cfg.LogLevel)

	unchanged := config.Config{BaseURL: "https://keep", BatchSize: 5}
	applyOverrides(&unchanged, commandParams{})
	assert.Equal(t, "https://keep", unchanged.BaseURL)
	assert.Equal(t, 5, unchanged.BatchSize)
}

func TestRerunCommandEscapesTestNames(t *testing.T) {
	failures := []framework.TestResult{
		{TestID: framework.TestID{Path: []string{"users", "get by id returns the matching user"}}},
	}
	cmd := rerunCommand("./harness", commandParams{baseURL: "https://x.example.com"}, failures)

	assert.Contains(t, cmd, "./harness")
	assert.Contains(t, cmd, "-url https://x.example.com")
	assert.Contains(t, cmd, "-debug")
	assert.Contains(t, cmd, "users/get by id")
}
