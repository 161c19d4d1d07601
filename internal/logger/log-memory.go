package logger

import "sync"

// MemoryLogger - Keeps every line, for asserting on in tests
type MemoryLogger struct {
	mu   sync.Mutex
	logs []string
}

func (l *MemoryLogger) Printf(level LogLevel, format string, a ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, formatLine(level, format, a...))
}
func (l *MemoryLogger) Debugf(format string, a ...interface{}) {
	l.Printf(LogDebug, format, a...)
}
func (l *MemoryLogger) Infof(format string, a ...interface{}) {
	l.Printf(LogInfo, format, a...)
}
func (l *MemoryLogger) Errorf(format string, a ...interface{}) {
	l.Printf(LogError, format, a...)
}

// Logs returns a copy of the lines logged so far.
func (l *MemoryLogger) Logs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.logs...)
}
