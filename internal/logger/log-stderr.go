package logger

import (
	"io"
	"log"
	"os"
)

// StdErrLogger - writes leveled lines through the standard log package
type StdErrLogger struct {
	logLevel LogLevel
	out      *log.Logger
}

// NewStdErrLogger creates a logger writing to stderr at the given level.
func NewStdErrLogger(level LogLevel) *StdErrLogger {
	return NewWriterLogger(os.Stderr, level)
}

// NewWriterLogger creates a logger writing to w without timestamps.
func NewWriterLogger(w io.Writer, level LogLevel) *StdErrLogger {
	return &StdErrLogger{logLevel: level, out: log.New(w, "", 0)}
}

func (l *StdErrLogger) Printf(level LogLevel, format string, a ...interface{}) {
	txt := formatLine(level, format, a...)

	if l.out == nil {
		log.Println(txt)
		return
	}

	l.out.Println(txt)
}
func (l *StdErrLogger) Debugf(format string, a ...interface{}) {
	if l.logLevel <= LogDebug {
		l.Printf(LogDebug, format, a...)
	}
}
func (l *StdErrLogger) Infof(format string, a ...interface{}) {
	if l.logLevel <= LogInfo {
		l.Printf(LogInfo, format, a...)
	}
}
func (l *StdErrLogger) Errorf(format string, a ...interface{}) {
	l.Printf(LogError, format, a...)
}

func (l *StdErrLogger) SetLogLevel(level LogLevel) {
	l.logLevel = level
}
func (l *StdErrLogger) GetLogLevel() LogLevel {
	return l.logLevel
}
