package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2026-09-10", "14:30")
	require.NoError(t, err)

	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.September, got.Month())
	assert.Equal(t, 10, got.Day())
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, Location().String(), got.Location().String())

	_, err = ParseDateTime("10/09/2026", "14:30")
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	at, err := ParseDateTime("2026-09-10", "17:45")
	require.NoError(t, err)

	start, end := DayBounds(at)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 10, start.Day())
	assert.Equal(t, 24*time.Hour, end.Sub(start))

	assert.False(t, at.Before(start))
	assert.True(t, at.Before(end))
}
