package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStored(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)

	got, err := ParseStored("2024-05-01T10:30:00+08:00", loc)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 5, 1, 10, 30, 0, 0, loc).Equal(got))

	got, err = ParseStored("2024-05-01T02:30:00Z", loc)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 5, 1, 10, 30, 0, 0, loc).Equal(got))

	got, err = ParseStored("2024-05-01 10:30", loc)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 5, 1, 10, 30, 0, 0, loc).Equal(got))

	got, err = ParseStored("", loc)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = ParseStored("not a date", loc)
	assert.Error(t, err)
}

func TestParseAt(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 1, 3, 9, 0, 0, 0, loc)

	got, err := ParseAt("", now, loc)
	require.NoError(t, err)
	assert.True(t, now.Equal(got))

	got, err = ParseAt("2026-02-01 08:00", now, loc)
	require.NoError(t, err)
	assert.True(t, time.Date(2026, 2, 1, 8, 0, 0, 0, loc).Equal(got))

	got, err = ParseAt("tomorrow", now, loc)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Day())
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = LoadLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}
