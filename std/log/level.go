package log

import (
	"fmt"
	"strings"
)

// Level is a logging severity. Values match the slog levels where both define one.
type Level int

const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelFatal Level = 12
)

var levelNames = []struct {
	level Level
	name  string
}{
	{LevelTrace, "TRACE"},
	{LevelDebug, "DEBUG"},
	{LevelInfo, "INFO"},
	{LevelWarn, "WARN"},
	{LevelError, "ERROR"},
	{LevelFatal, "FATAL"},
}

// ParseLevel maps a level name to its Level, ignoring case.
func ParseLevel(s string) (Level, error) {
	for _, l := range levelNames {
		if strings.EqualFold(l.name, s) {
			return l.level, nil
		}
	}
	return LevelInfo, fmt.Errorf("invalid log level %q", s)
}

func (level Level) String() string {
	for _, l := range levelNames {
		if l.level == level {
			return l.name
		}
	}
	return "UNKNOWN"
}
