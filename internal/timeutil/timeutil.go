package timeutil

import (
	"fmt"
	"time"
)

// Localize parses an ISO-8601 UTC timestamp and converts it to the given
// civil timezone. The offset follows the zone's DST rules, so the same
// UTC instant localizes differently in summer and winter.
func Localize(value string, loc *time.Location) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp %q: %w", value, err)
	}
	return ts.In(loc), nil
}

// HoursBetween returns the signed difference to-from in fractional hours.
func HoursBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours()
}
