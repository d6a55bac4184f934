package model

import "strings"

// ChunkSize is the read size used when copying a media body to disk.
const ChunkSize = 8192

// UnknownSizeLabel is shown when the server sends no Content-Length.
const UnknownSizeLabel = "unknown size"

// LogLevel is the verbosity selected on the command line or in config.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
)

// ParseLogLevel converts a string to a LogLevel. Empty input yields info.
func ParseLogLevel(s string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return LogLevelInfo, true
	case "debug", "verbose":
		return LogLevelDebug, true
	case "warn", "warning", "quiet":
		return LogLevelWarn, true
	default:
		return "", false
	}
}
