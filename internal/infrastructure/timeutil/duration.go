// Package timeutil provides time parsing, duration formatting, and layover
// arithmetic for the itinerary pipeline, plus a Clock abstraction for testability.
package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

// NotAvailable is returned when a duration cannot be derived from the input.
const NotAvailable = "N/A"

// isoDurationRegex matches the subset of ISO-8601 durations the upstream API
// emits: an hour part, a minute part, or both (e.g., "PT6H20M", "PT45M").
var isoDurationRegex = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// FormatISODuration converts an ISO-8601 duration string into human units:
// "PT6H20M" becomes "6h 20m", "PT2H" becomes "2h", "PT45M" becomes "45m".
// Missing or malformed input yields NotAvailable.
func FormatISODuration(iso string) string {
	m := isoDurationRegex.FindStringSubmatch(iso)
	if m == nil || (m[1] == "" && m[2] == "") {
		return NotAvailable
	}

	switch {
	case m[1] != "" && m[2] != "":
		return m[1] + "h " + m[2] + "m"
	case m[1] != "":
		return m[1] + "h"
	default:
		return m[2] + "m"
	}
}

// FormatElapsed formats a duration as "{h}h {m}m", flooring to whole hours and
// remaining minutes. Negative durations clamp to "0h 0m"; this keeps layover
// arithmetic total even when upstream timestamps are out of order.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// LayoverBetween computes the ground time between an arrival and the next
// departure, formatted as "{h}h {m}m". Zero or negative gaps still produce a
// formatted string, never an error.
func LayoverBetween(arrival, departure time.Time) string {
	return FormatElapsed(departure.Sub(arrival))
}

// Elapsed returns the delta between an arrival and the next departure.
// Negative deltas clamp to zero so they cannot shrink a summed total.
func Elapsed(arrival, departure time.Time) time.Duration {
	d := departure.Sub(arrival)
	if d < 0 {
		return 0
	}
	return d
}

// ParseDateTime parses an ISO 8601 datetime string.
// Supports "2006-01-02T15:04:05Z07:00" and the zone-less "2006-01-02T15:04:05"
// form the upstream API uses for local airport times.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse("2006-01-02T15:04:05", s)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime %q", s)
}
