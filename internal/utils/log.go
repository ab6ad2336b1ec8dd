package utils

import (
	"log"
	"os"
	"strconv"
)

// LogLevel gates how much of the congestion controller's window/RTT
// transition instrumentation gets emitted. Only LogLevelDebug currently
// turns anything on; the lower levels exist so a caller can dial the
// --log-level flag down to silence without special-casing "off".
type LogLevel uint8

const (
	logEnv = "VEGAS_LOG_LEVEL"

	// LogLevelNothing disables all instrumentation.
	LogLevelNothing LogLevel = 0
	// LogLevelError is reserved for future error-path instrumentation.
	LogLevelError LogLevel = 1
	// LogLevelInfo is reserved for future summary-level instrumentation.
	LogLevelInfo LogLevel = 2
	// LogLevelDebug enables per-adjustment window/RTT/idle-reset logging.
	LogLevelDebug LogLevel = 3
)

var logLevel = LogLevelNothing

// SetLogLevel sets the log level.
func SetLogLevel(level LogLevel) {
	logLevel = level
}

// Debugf logs a window, RTT, or idle-reset transition when the debug level
// is enabled; it is a no-op otherwise.
func Debugf(format string, args ...interface{}) {
	if logLevel == LogLevelDebug {
		log.Printf(format, args...)
	}
}

// Debug returns true if the log level is LogLevelDebug.
func Debug() bool {
	return logLevel == LogLevelDebug
}

func init() {
	readLoggingEnv()
}

func readLoggingEnv() {
	env := os.Getenv(logEnv)
	if env == "" {
		return
	}
	level, err := strconv.Atoi(env)
	if err != nil {
		return
	}
	logLevel = LogLevel(level)
}
