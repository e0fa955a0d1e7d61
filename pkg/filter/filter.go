// Package filter answers faceted queries over a snapshot of job records.
package filter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jdziat/jobs-filter/pkg/core"
	"github.com/jdziat/jobs-filter/pkg/facet"
	"github.com/jdziat/jobs-filter/pkg/query"
)

// JobsFilter holds one request's view of the record store: the compiled
// parameters, the time they were evaluated at and the records read once from
// the store. It is immutable and safe for concurrent use.
type JobsFilter struct {
	plan     *query.Plan
	snapshot []*core.Job
	logger   *slog.Logger
}

// New validates params, captures the current time and reads the records the
// filter needs from store. Parameter errors are returned before the store is read.
// A query naming the ID of a record in the snapshot matches only that record.
func New(ctx context.Context, store core.Store, params query.Params, opts ...Option) (*JobsFilter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt.apply(cfg)
	}

	plan, err := query.Build(params, cfg.clock())
	if err != nil {
		return nil, err
	}

	jobs, err := store.ListJobs(ctx, plan.StoreQuery())
	if err != nil {
		return nil, fmt.Errorf("jobs: list records: %w", err)
	}
	byID := plan.ResolveSearch(jobs)

	cfg.logger.DebugContext(ctx, "jobs filter built",
		"records", len(jobs),
		"search_by_id", byID,
		"dimensions", plan.Dimensions(),
		"now", plan.Now(),
	)

	return &JobsFilter{
		plan:     plan,
		snapshot: jobs,
		logger:   cfg.logger,
	}, nil
}

// Now returns the time states are derived at.
func (f *JobsFilter) Now() time.Time {
	return f.plan.Now()
}

// Params returns the normalized parameters.
func (f *JobsFilter) Params() query.Params {
	return f.plan.Params()
}

// JobClasses counts matching records per job class, ignoring the job class filter.
func (f *JobsFilter) JobClasses() map[string]int64 {
	return facet.ByJobClass(f.plan.FilterExcept(query.DimJobClass, f.snapshot))
}

// Queues counts matching records per queue, ignoring the queue filter.
func (f *JobsFilter) Queues() map[string]int64 {
	return facet.ByQueue(f.plan.FilterExcept(query.DimQueue, f.snapshot))
}

// States counts matching records per derived state, ignoring the state filter.
// All canonical states are present.
func (f *JobsFilter) States() map[string]int64 {
	return facet.ByState(f.plan.FilterExcept(query.DimState, f.snapshot), f.plan.Now())
}

// StateNames returns the canonical state names; always the keys of States.
func (f *JobsFilter) StateNames() []string {
	states := core.StateNames()
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = string(s)
	}
	return names
}

// Records returns the matching records, ordered and paginated.
func (f *JobsFilter) Records() []*core.Job {
	return f.plan.Materialize(f.snapshot)
}

// FilteredCount counts every matching record, ignoring pagination.
func (f *JobsFilter) FilteredCount() int64 {
	return int64(len(f.plan.Filter(f.snapshot)))
}

// Summary bundles facets, records and counts for presentation layers.
type Summary struct {
	Now           time.Time        `json:"now" yaml:"now"`
	FilteredCount int64            `json:"filtered_count" yaml:"filtered_count"`
	StateNames    []string         `json:"state_names" yaml:"state_names"`
	States        map[string]int64 `json:"states" yaml:"states"`
	Queues        map[string]int64 `json:"queues" yaml:"queues"`
	JobClasses    map[string]int64 `json:"job_classes" yaml:"job_classes"`
	Records       []*core.Job      `json:"records" yaml:"records"`
}

// Summary computes every facet and the record page.
func (f *JobsFilter) Summary() *Summary {
	return &Summary{
		Now:           f.Now(),
		FilteredCount: f.FilteredCount(),
		StateNames:    f.StateNames(),
		States:        f.States(),
		Queues:        f.Queues(),
		JobClasses:    f.JobClasses(),
		Records:       f.Records(),
	}
}
