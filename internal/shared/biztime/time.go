// Package biztime provides utilities for business timezone calculations.
// Storage and transport use UTC. The business timezone is only used for
// calendar boundaries such as "this year" on the dashboard.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Kolkata"
)

var (
	bizLocation *time.Location
	bizMu       sync.RWMutex
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load business timezone %q: %w", tz, err)
	}
	bizMu.Lock()
	bizLocation = loc
	bizMu.Unlock()
	return nil
}

// Location returns the business timezone, falling back to UTC when Init has
// not run or the default zone database is unavailable.
func Location() *time.Location {
	bizMu.RLock()
	loc := bizLocation
	bizMu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		return time.UTC
	}
	return Location()
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Year returns the calendar year of t in the business timezone.
func Year(t time.Time) int {
	return t.In(Location()).Year()
}

// StartOfYearUTC returns the start of year in business timezone, converted to UTC.
func StartOfYearUTC(year int) time.Time {
	return time.Date(year, 1, 1, 0, 0, 0, 0, Location()).UTC()
}

// ParseDate parses a YYYY-MM-DD string as midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t, nil
}
