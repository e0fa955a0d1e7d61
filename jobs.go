// Package jobsfilter classifies background job records and answers faceted
// queries over a job record store.
//
// This is the main package users should import. It re-exports the public
// types from the internal pkg/ packages for a clean API surface.
//
// Basic usage:
//
//	db, _ := gorm.Open(sqlite.Open("jobs.db"), &gorm.Config{})
//	store := jobsfilter.NewGormStorage(db)
//
//	f, err := jobsfilter.New(ctx, store, jobsfilter.Params{
//	    State: "finished",
//	    Query: "DeadError",
//	    Limit: 50,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(f.States(), f.Queues(), f.FilteredCount())
//	for _, job := range f.Records() {
//	    fmt.Println(job.ID, job.State(f.Now()))
//	}
package jobsfilter

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/jdziat/jobs-filter/pkg/core"
	"github.com/jdziat/jobs-filter/pkg/filter"
	"github.com/jdziat/jobs-filter/pkg/query"
	"github.com/jdziat/jobs-filter/pkg/storage"
)

// Type aliases
type (
	// Job is one persisted execution attempt of a background job.
	Job = core.Job

	// State is a job's derived lifecycle state.
	State = core.State

	// Store is the read contract of a job record store.
	Store = core.Store

	// RecordQuery narrows and orders a store read.
	RecordQuery = core.RecordQuery

	// Params holds the optional filter inputs.
	Params = query.Params

	// Order sorts records by a timestamp column.
	Order = query.Order

	// JobsFilter answers faceted queries over one snapshot of the store.
	JobsFilter = filter.JobsFilter

	// Summary bundles facets, records and counts.
	Summary = filter.Summary

	// Option configures a JobsFilter.
	Option = filter.Option

	// GormStorage implements Store using GORM.
	GormStorage = storage.GormStorage

	// MemoryStorage implements Store over an in-process record set.
	MemoryStorage = storage.MemoryStorage

	// RedisStorage implements Store over a Redis hash.
	RedisStorage = storage.RedisStorage
)

// State constants
const (
	StateScheduled = core.StateScheduled
	StateQueued    = core.StateQueued
	StateRunning   = core.StateRunning
	StateSucceeded = core.StateSucceeded
	StateDiscarded = core.StateDiscarded
	StateRetried   = core.StateRetried
	StateFinished  = core.StateFinished
)

// Error variables
var (
	ErrInvalidFinishedSince = core.ErrInvalidFinishedSince
	ErrInvalidOrder         = core.ErrInvalidOrder
	ErrInvalidPagination    = core.ErrInvalidPagination
	ErrQueryTooLong         = core.ErrQueryTooLong
	ErrParamTooLong         = core.ErrParamTooLong
)

// New builds a filter over store. See filter.New.
func New(ctx context.Context, store Store, params Params, opts ...Option) (*JobsFilter, error) {
	return filter.New(ctx, store, params, opts...)
}

// Classify derives the state of job at now.
func Classify(job *Job, now time.Time) State {
	return core.Classify(job, now)
}

// StateNames returns the canonical states in facet order.
func StateNames() []State {
	return core.StateNames()
}

// ParamsFromValues reads Params from a flat string map such as a URL query.
func ParamsFromValues(v url.Values) (Params, error) {
	return query.ParamsFromValues(v)
}

// ParseOrder parses "<column> [asc|desc]".
func ParseOrder(s string) (Order, error) {
	return query.ParseOrder(s)
}

// NewGormStorage creates a new GORM-backed storage.
func NewGormStorage(db *gorm.DB) *GormStorage {
	return storage.NewGormStorage(db)
}

// NewMemoryStorage creates an in-process storage holding copies of jobs.
func NewMemoryStorage(jobs ...*Job) *MemoryStorage {
	return storage.NewMemoryStorage(jobs...)
}

// NewRedisStorage creates a Redis-backed storage reading the default hash key.
func NewRedisStorage(client redis.UniversalClient) *RedisStorage {
	return storage.NewRedisStorage(client)
}

// Filter option functions

// WithClock sets the time source read once per filter.
func WithClock(clock func() time.Time) Option {
	return filter.WithClock(clock)
}

// WithNow fixes the filter's current time.
func WithNow(now time.Time) Option {
	return filter.WithNow(now)
}

// WithLogger sets the filter's logger.
func WithLogger(l *slog.Logger) Option {
	return filter.WithLogger(l)
}
