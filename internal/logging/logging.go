// Package logging implements simple logging functionality with a focus on
// debug-level events. By default, logging is disabled and the underlying
// logger is a no-op implementation. Use SetLogger to wire up a logger and
// enable debug level events.
package logging

var logger Interface = noopLogger{}

// Interface is the logging contract consumed by the cache. Any type with a
// Debugf method satisfies it.
type Interface interface {
	// Debugf logs v using a format string.
	Debugf(format string, v ...interface{})
}

// SetLogger sets the logger used by the cache package and enables debug
// level logging.
func SetLogger(l Interface) {
	logger = l
}

// Debugf writes to the log using the configured logger.
func Debugf(format string, v ...interface{}) {
	if logger != nil {
		logger.Debugf(format, v...)
	}
}

// DebugEnabled returns true if a logger has been supplied via SetLogger.
func DebugEnabled() bool {
	switch logger.(type) {
	case noopLogger, nil:
		return false
	default:
		return true
	}
}

type noopLogger struct{}

func (noopLogger) Debugf(format string, v ...interface{}) {
	// do nothing
}
