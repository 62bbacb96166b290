// Package format renders timestamps for chat lines and profiles.
package format

import (
	"time"

	"github.com/fsbteam/chat/internal/config"
)

// Clock modes accepted by the display_time config key.
const (
	Clock24h = "24h"
	Clock12h = "12h"
	ClockOff = "off"
)

// Stamp returns the "[15:04] " prefix of a chat line in the configured
// clock mode, or "" when timestamps are off.
func Stamp(t time.Time) string {
	return StampIn(t, clockMode())
}

// StampIn is Stamp with an explicit clock mode.
func StampIn(t time.Time, mode string) string {
	if mode == ClockOff {
		return ""
	}
	return "[" + TimeIn(t, mode) + "] "
}

// Time formats only the time portion according to config.
// Example output: "15:04" or "3:04 PM"
func Time(t time.Time) string {
	return TimeIn(t, clockMode())
}

// TimeIn formats the time of day in mode. Unknown modes use 24h.
func TimeIn(t time.Time, mode string) string {
	if mode == Clock12h {
		return t.Format("3:04 PM")
	}
	return t.Format("15:04")
}

// Date formats a calendar date, used for "member since" lines.
// Example output: "Jan 23, 2024"
func Date(t time.Time) string {
	return t.Format("Jan 02, 2006")
}

// DateTime formats a time with both date and time according to config.
// Example output: "Jan 23, 2024 15:04"
func DateTime(t time.Time) string {
	return Date(t) + " " + Time(t)
}

func clockMode() string {
	mode, _ := config.Get("display_time")
	if mode == "" {
		return Clock24h
	}
	return mode
}
