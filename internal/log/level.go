package log

import "strings"

// Level is the severity of a log line
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel maps debug, info, warn or error (any case) to a Level.
// Anything else is LevelWarn.
func ParseLevel(s string) Level {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for l, name := range levelNames {
		if name == upper {
			return Level(l)
		}
	}
	return LevelWarn
}
