package logging

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true // keep assertions independent of terminal detection
}

func TestMinimumLevelSuppressesLowerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Warn)

	logger.Debugf("debug line")
	logger.Infof("info line")
	logger.Warnf("warn line")
	logger.Errorf("error line")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "warn line")
	assert.Contains(t, out, "error line")
}

func TestForComponentPrefixesMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Debug).ForComponent("users")

	logger.Infof("getAll")
	assert.Contains(t, buf.String(), "[users] getAll")

	buf.Reset()
	logger.ForComponent("batch").Warnf("dropped item")
	assert.Contains(t, buf.String(), "[users.batch] dropped item")
}

func TestPrintfLogsAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Info)
	logger.Printf("request %d", 7)
	assert.Contains(t, buf.String(), "request 7")

	buf.Reset()
	quiet := NewLogger(&buf, Warn)
	quiet.Printf("hidden")
	assert.Empty(t, buf.String())
}

func TestStartTimerLogsElapsedDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Debug)

	stop := logger.StartTimer("create user")
	stop()
	assert.Regexp(t, `create user completed in \d+ms`, buf.String())
}

func TestParseLevel(t *testing.T) {
	for input, want := range map[string]Level{
		"debug": Debug, "INFO": Info, "Warn": Warn, "warning": Warn, "error": Error, "": Info,
	} {
		got, err := ParseLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
