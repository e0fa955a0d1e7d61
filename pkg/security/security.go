// Package security provides validation, sanitization, and limits for filter parameters.
package security

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jdziat/jobs-filter/pkg/core"
)

// Security limits and configuration
const (
	// MaxFilterValueLength is the maximum length for exact-match values (job class, queue, cron key, state)
	MaxFilterValueLength = 255

	// MaxQueryLength is the maximum length for free-text search queries
	MaxQueryLength = 1024

	// MaxPageSize is the hard limit for a single page of records
	MaxPageSize = 1000

	// MaxOffset is the hard limit for pagination offsets
	MaxOffset = 1_000_000
)

// ValidateFilterValue checks the length of an exact-match filter value.
// Empty values are valid and mean the filter is inactive.
func ValidateFilterValue(name, value string) error {
	if utf8.RuneCountInString(value) > MaxFilterValueLength {
		return fmt.Errorf("%w: %s", core.ErrParamTooLong, name)
	}
	return nil
}

// ValidateQuery checks the length of a free-text search query.
func ValidateQuery(q string) error {
	if utf8.RuneCountInString(q) > MaxQueryLength {
		return core.ErrQueryTooLong
	}
	return nil
}

// SanitizeQuery removes control characters and surrounding whitespace from a search query.
func SanitizeQuery(q string) string {
	if q == "" {
		return ""
	}

	var sanitized strings.Builder
	sanitized.Grow(len(q))

	for _, r := range q {
		if r == utf8.RuneError || unicode.IsControl(r) {
			continue
		}
		sanitized.WriteRune(r)
	}

	return strings.TrimSpace(sanitized.String())
}

// ValidatePagination rejects a page larger than MaxPageSize or an offset past MaxOffset.
// Negative values are not errors; the clamps turn them into zero.
func ValidatePagination(limit, offset int) error {
	if limit > MaxPageSize {
		return fmt.Errorf("%w: limit %d exceeds %d", core.ErrInvalidPagination, limit, MaxPageSize)
	}
	if offset > MaxOffset {
		return fmt.Errorf("%w: offset %d exceeds %d", core.ErrInvalidPagination, offset, MaxOffset)
	}
	return nil
}

// ClampLimit maps negative page sizes to zero, which means unlimited.
func ClampLimit(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// ClampOffset maps negative offsets to zero.
func ClampOffset(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
