package logger

import (
	"sync"
)

// Log levels accepted in configs/config.yml under log.level.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	root *Logger
	once sync.Once
)

// Get returns the process-wide logger. The first caller fixes the
// level (main calls it before anything else); later calls ignore the
// argument and return the same instance.
func Get(level string) *Logger {
	once.Do(func() {
		root = newZapLogger(level)
	})
	return root
}

// Component returns a child logger tagged with a subsystem name, so
// lines from the HTTP layer and the background refresher can be told
// apart in one stream.
func (l *Logger) Component(name string) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.Named(name)}
}
