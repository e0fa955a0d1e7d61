package security

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdziat/jobs-filter/pkg/core"
)

func TestValidateFilterValue_Valid(t *testing.T) {
	validValues := []string{
		"",
		"ExampleJob",
		"Namespace::ExampleJob",
		"queue with spaces",
		strings.Repeat("a", MaxFilterValueLength),
	}

	for _, v := range validValues {
		err := ValidateFilterValue("job_class", v)
		assert.NoError(t, err, "Expected %q to be valid", v)
	}
}

func TestValidateFilterValue_TooLong(t *testing.T) {
	err := ValidateFilterValue("queue_name", strings.Repeat("q", MaxFilterValueLength+1))
	assert.True(t, errors.Is(err, core.ErrParamTooLong))
	assert.Contains(t, err.Error(), "queue_name")
}

func TestValidateFilterValue_CountsRunes(t *testing.T) {
	// 255 multi-byte runes exceed 255 bytes but not the rune limit
	assert.NoError(t, ValidateFilterValue("job_class", strings.Repeat("é", MaxFilterValueLength)))
}

func TestValidateQuery(t *testing.T) {
	assert.NoError(t, ValidateQuery("DeadError"))
	assert.NoError(t, ValidateQuery(strings.Repeat("x", MaxQueryLength)))
	assert.ErrorIs(t, ValidateQuery(strings.Repeat("x", MaxQueryLength+1)), core.ErrQueryTooLong)
}

func TestSanitizeQuery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal query",
			input:    "DeadError",
			expected: "DeadError",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "surrounding whitespace",
			input:    "  ExampleJob::DeadError \n",
			expected: "ExampleJob::DeadError",
		},
		{
			name:     "null bytes and escapes",
			input:    "Dead\x00Error\x1b",
			expected: "DeadError",
		},
		{
			name:     "inner spaces kept",
			input:    "dead error",
			expected: "dead error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeQuery(tt.input))
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 0, ClampLimit(-5))
	assert.Equal(t, 0, ClampLimit(0))
	assert.Equal(t, 50, ClampLimit(50))
	assert.Equal(t, MaxPageSize, ClampLimit(MaxPageSize))
}

func TestClampOffset(t *testing.T) {
	assert.Equal(t, 0, ClampOffset(-1))
	assert.Equal(t, 25, ClampOffset(25))
	assert.Equal(t, MaxOffset, ClampOffset(MaxOffset))
}

func TestValidatePagination(t *testing.T) {
	assert.NoError(t, ValidatePagination(0, 0))
	assert.NoError(t, ValidatePagination(-1, -1))
	assert.NoError(t, ValidatePagination(MaxPageSize, MaxOffset))

	err := ValidatePagination(MaxPageSize*5, 0)
	assert.ErrorIs(t, err, core.ErrInvalidPagination)
	assert.Contains(t, err.Error(), "limit 5000")

	assert.ErrorIs(t, ValidatePagination(10, MaxOffset+1), core.ErrInvalidPagination)
}
