package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdziat/jobs-filter/pkg/core"
)

func TestParseRelative_Valid(t *testing.T) {
	tests := []struct {
		token string
		want  time.Duration
	}{
		{"1_hour_ago", time.Hour},
		{"1 hour ago", time.Hour},
		{"2_hours_ago", 2 * time.Hour},
		{"30_minutes_ago", 30 * time.Minute},
		{"1_minute_ago", time.Minute},
		{"45_seconds_ago", 45 * time.Second},
		{"7_days_ago", 7 * 24 * time.Hour},
		{"1_day_ago", 24 * time.Hour},
		{"0_seconds_ago", 0},
		{"  3_HOURS_AGO ", 3 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseRelative(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRelative_Invalid(t *testing.T) {
	for _, token := range []string{
		"",
		"yesterday",
		"1_hour",
		"hour_ago",
		"-1_hour_ago",
		"1_fortnight_ago",
		"1.5_hours_ago",
		"1_hour_from_now",
		"99999999999999_days_ago",
	} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseRelative(token)
			assert.ErrorIs(t, err, core.ErrInvalidFinishedSince)
		})
	}
}

func TestResolveRelative(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	got, err := ResolveRelative("1_hour_ago", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(-time.Hour), got)

	_, err = ResolveRelative("soon", now)
	assert.ErrorIs(t, err, core.ErrInvalidFinishedSince)
}
