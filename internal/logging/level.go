package logging

import (
	"log/slog"
	"strings"
)

// DefaultLevel is the level applied when no level is configured.
const DefaultLevel = slog.LevelInfo

// ParseLevel maps a level name to its slog.Level. Names are matched
// case-insensitively; "debug", "info", "warn" and "error" are accepted.
// Unrecognized names yield (DefaultLevel, false).
func ParseLevel(s string) (level slog.Level, ok bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return DefaultLevel, false
	}
}

// ParseLevelOrDefault is ParseLevel without the ok result; unrecognized
// names fall back to DefaultLevel.
func ParseLevelOrDefault(s string) slog.Level {
	level, _ := ParseLevel(s)
	return level
}
