package core

import (
	"errors"
)

// Validation errors
var (
	ErrInvalidFinishedSince = errors.New("jobs: invalid finished_since (want <n>_<unit>_ago)")
	ErrInvalidOrder         = errors.New("jobs: invalid order")
	ErrInvalidPagination    = errors.New("jobs: invalid pagination")
	ErrQueryTooLong         = errors.New("jobs: search query too long")
	ErrParamTooLong         = errors.New("jobs: filter parameter too long")
)
