package framework

import "time"

// TestLogger receives test lifecycle events as the run progresses. The CLI
// installs a console implementation; a null implementation is used when none
// is provided.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, elapsed time.Duration, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                                      {}
func (n nullTestLogger) TestError(TestID, error)                                 {}
func (n nullTestLogger) TestFinished(TestID, bool, time.Duration, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                              {}
