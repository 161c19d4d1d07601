// Package logger provides the leveled logging interface used across the
// translator, with a stderr implementation and test doubles.
package logger

import (
	"fmt"
	"strings"
)

// LogLevel - log level type
type LogLevel int

const (
	// LogDebug - DEBUG log level
	LogDebug LogLevel = iota

	// LogInfo - INFO log level
	LogInfo

	// LogError - ERROR log level (does not call os.Exit!)
	LogError
)

var logLevelPrefix = map[LogLevel]string{
	LogDebug: "DEBUG",
	LogInfo:  "INFO",
	LogError: "ERROR",
}

// String returns the prefix printed for the level.
func (l LogLevel) String() string {
	if p, ok := logLevelPrefix[l]; ok {
		return p
	}

	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLogLevel accepts "debug", "info" or "error" in any case.
func ParseLogLevel(s string) (LogLevel, error) {
	for level, prefix := range logLevelPrefix {
		if strings.EqualFold(prefix, s) {
			return level, nil
		}
	}

	return LogInfo, fmt.Errorf("unknown log level %q, expected debug, info or error", s)
}

// ILogger - Generic logger interface
type ILogger interface {
	Printf(level LogLevel, format string, a ...interface{})
	Debugf(format string, a ...interface{})
	Infof(format string, a ...interface{})
	Errorf(format string, a ...interface{})
}

func formatLine(level LogLevel, format string, a ...interface{}) string {
	return logLevelPrefix[level] + ": " + fmt.Sprintf(format, a...)
}
