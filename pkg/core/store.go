package core

import (
	"context"
)

// Record ordering columns understood by every Store.
const (
	OrderByCreatedAt   = "created_at"
	OrderByScheduledAt = "scheduled_at"
	OrderByFinishedAt  = "finished_at"
)

// RecordQuery narrows and orders a store read. Empty string fields are not applied.
type RecordQuery struct {
	ID       string
	JobClass string
	Queue    string
	CronKey  string

	OrderBy   string // One of the OrderBy* columns; defaults to created_at
	Ascending bool

	Limit  int // <= 0 means no limit
	Offset int
}

// Store is the read contract of the external job record store.
type Store interface {
	// ListJobs returns the records matching q in q's order.
	ListJobs(ctx context.Context, q RecordQuery) ([]*Job, error)

	// CountJobs counts the records matching q, ignoring Limit and Offset.
	CountJobs(ctx context.Context, q RecordQuery) (int64, error)
}

// Narrowed reports whether q has any equality filter.
func (q RecordQuery) Narrowed() bool {
	return q.ID != "" || q.JobClass != "" || q.Queue != "" || q.CronKey != ""
}
