package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := parseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = parseDate("2025-06-01T15:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 1, 13, 0, 0, 0, time.UTC), d)

	_, err = parseDate("June 1st")
	assert.Error(t, err)
}

func TestParseLatLon(t *testing.T) {
	lat, lon, err := parseLatLon("34.02, -118.77")
	require.NoError(t, err)
	assert.InDelta(t, 34.02, lat, 1e-9)
	assert.InDelta(t, -118.77, lon, 1e-9)

	for _, bad := range []string{"34.02", "91,0", "0,181", "a,b"} {
		_, _, err := parseLatLon(bad)
		assert.Error(t, err, bad)
	}
}
