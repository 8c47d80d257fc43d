// Package logging provides the leveled logger used throughout the harness.
//
// There is deliberately no package-level logger: a *Logger is constructed once
// at startup and passed into each component, so the level and sink are decided
// in exactly one place. Component code obtains a scoped child via ForComponent,
// which prefixes every line with the component name.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level is a log severity. Messages below the logger's minimum level are
// discarded.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a configuration string such as "debug" or "WARN" to a
// Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, nil
	case "info", "":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	}
	return Info, fmt.Errorf("unrecognized log level %q", s)
}

var levelColors = map[Level]*color.Color{
	Debug: color.New(color.FgHiBlack),
	Info:  color.New(color.FgCyan),
	Warn:  color.New(color.FgYellow),
	Error: color.New(color.FgRed),
}

// Logger writes timestamped, leveled lines to a single sink. It is safe for
// concurrent use; children share the parent's sink, level and lock.
type Logger struct {
	sink      io.Writer
	minLevel  Level
	component string
	lock      *sync.Mutex
}

// NewLogger creates the root logger. All scoped children derive from it.
func NewLogger(sink io.Writer, minLevel Level) *Logger {
	return &Logger{sink: sink, minLevel: minLevel, lock: &sync.Mutex{}}
}

// ForComponent returns a child logger whose lines carry the given component
// name. Nested scopes are joined with a dot.
func (l *Logger) ForComponent(name string) *Logger {
	child := *l
	if l.component != "" {
		child.component = l.component + "." + name
	} else {
		child.component = name
	}
	return &child
}

func (l *Logger) log(level Level, message string, args ...interface{}) {
	if level < l.minLevel {
		return
	}
	line := fmt.Sprintf(message, args...)
	l.lock.Lock()
	defer l.lock.Unlock()
	fmt.Fprintf(l.sink, "%s %s ", time.Now().Format("2006-01-02 15:04:05.000"),
		levelColors[level].Sprintf("%-5s", level))
	if l.component != "" {
		fmt.Fprintf(l.sink, "[%s] ", l.component)
	}
	fmt.Fprintln(l.sink, line)
}

func (l *Logger) Debugf(message string, args ...interface{}) { l.log(Debug, message, args...) }
func (l *Logger) Infof(message string, args ...interface{})  { l.log(Info, message, args...) }
func (l *Logger) Warnf(message string, args ...interface{})  { l.log(Warn, message, args...) }
func (l *Logger) Errorf(message string, args ...interface{}) { l.log(Error, message, args...) }

// Printf logs at Info level. It exists so a *Logger satisfies
// framework.Logger and can be handed to any code that takes one.
func (l *Logger) Printf(message string, args ...interface{}) {
	l.log(Info, message, args...)
}

// StartTimer begins timing a unit of work. The returned stop function logs the
// label with the elapsed duration attached, at Debug level.
func (l *Logger) StartTimer(label string) func() {
	started := time.Now()
	return func() {
		l.Debugf("%s completed in %dms", label, time.Since(started).Milliseconds())
	}
}
