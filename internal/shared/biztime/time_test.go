package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYear_UsesBusinessTimezone(t *testing.T) {
	require.NoError(t, Init("Asia/Kolkata"))

	// 2025-12-31 20:00 UTC is already 2026-01-01 01:30 in Kolkata.
	ts := time.Date(2025, 12, 31, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, 2026, Year(ts))
	assert.Equal(t, 2025, ts.Year())
}

func TestInit_InvalidTimezone(t *testing.T) {
	err := Init("Not/AZone")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-07-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("15/07/2024")
	assert.Error(t, err)
}

func TestStartOfYearUTC(t *testing.T) {
	require.NoError(t, Init("UTC"))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), StartOfYearUTC(2024))
}
