package utils

import (
	"fmt"
	"strings"
	"time"
)

// Wire format for chat timestamps: an ISO local timestamp followed by a
// bracketed IANA zone name, e.g. "2024-01-01T10:00:00[America/Toronto]".
// This is a bespoke micro-format kept for compatibility with existing clients.
const stampLayout = "2006-01-02T15:04:05"

// ParseStamped parses a bracket-annotated timestamp into an instant and its
// zone name. An empty input yields the current time in defaultZone. Malformed
// input is not defensively recovered; the parse error is returned as-is.
func ParseStamped(stamped, defaultZone string) (time.Time, string, error) {
	if stamped == "" {
		return time.Now(), defaultZone, nil
	}

	open := strings.Index(stamped, "[")
	close := strings.LastIndex(stamped, "]")
	if open == -1 || close == -1 || close < open {
		return time.Time{}, "", fmt.Errorf("missing [Zone] suffix in %q", stamped)
	}

	zone := stamped[open+1 : close]
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("unknown timezone %q: %w", zone, err)
	}

	t, err := time.ParseInLocation(stampLayout, stamped[:open], loc)
	if err != nil {
		return time.Time{}, "", err
	}
	return t, zone, nil
}

// FormatStamped echoes a timestamp back in the given zone, re-annotated with
// the bracketed zone name.
func FormatStamped(t time.Time, zone string) (string, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return "", fmt.Errorf("unknown timezone %q: %w", zone, err)
	}
	return t.In(loc).Format(time.RFC3339) + "[" + zone + "]", nil
}

// FormatExportTime renders a timestamp for transcript exports.
func FormatExportTime(t time.Time) string {
	return t.Format("01/02/2006 15:04:05")
}
