package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jdziat/jobs-filter/pkg/core"
)

var relativeUnits = map[string]time.Duration{
	"second":  time.Second,
	"seconds": time.Second,
	"minute":  time.Minute,
	"minutes": time.Minute,
	"hour":    time.Hour,
	"hours":   time.Hour,
	"day":     24 * time.Hour,
	"days":    24 * time.Hour,
}

// ParseRelative parses a token of the form <n>_<unit>_ago, e.g. "1_hour_ago"
// or "30 minutes ago". Units are seconds, minutes, hours and days.
func ParseRelative(token string) (time.Duration, error) {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(token)), func(r rune) bool {
		return r == '_' || r == ' '
	})
	if len(fields) != 3 || fields[2] != "ago" {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidFinishedSince, token)
	}

	n, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidFinishedSince, token)
	}
	unit, ok := relativeUnits[fields[1]]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit in %q", core.ErrInvalidFinishedSince, token)
	}
	if n > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("%w: %q overflows", core.ErrInvalidFinishedSince, token)
	}
	return time.Duration(n) * unit, nil
}

// ResolveRelative returns the absolute time token refers to, relative to now.
func ResolveRelative(token string, now time.Time) (time.Time, error) {
	d, err := ParseRelative(token)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(-d), nil
}
