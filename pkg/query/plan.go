package query

import (
	"time"

	"github.com/jdziat/jobs-filter/pkg/core"
	"github.com/jdziat/jobs-filter/pkg/security"
)

// Dimension names one independently optional filter.
type Dimension string

const (
	DimState         Dimension = "state"
	DimJobClass      Dimension = "job_class"
	DimQueue         Dimension = "queue_name"
	DimCronKey       Dimension = "cron_key"
	DimFinishedSince Dimension = "finished_since"
	DimQuery         Dimension = "query"
)

// Predicate reports whether a record passes one filter.
type Predicate func(*core.Job) bool

type clause struct {
	dim  Dimension
	pred Predicate
}

// Plan is a validated, compiled set of filter parameters evaluated at a fixed now.
type Plan struct {
	params  Params
	now     time.Time
	clauses []clause
	search  *Search

	// FinishedThreshold is the resolved finished_since time, nil when inactive.
	FinishedThreshold *time.Time
}

// Build validates p and compiles its predicates at now.
// Invalid finished_since tokens, oversize values, pages above the size limits
// and unknown order columns are errors; an unknown state is not and simply
// matches nothing. The query runs in text mode until ResolveSearch is called.
func Build(p Params, now time.Time) (*Plan, error) {
	for _, f := range []struct {
		name  string
		value string
	}{
		{KeyState, p.State},
		{KeyJobClass, p.JobClass},
		{KeyQueueName, p.Queue},
		{KeyCronKey, p.CronKey},
		{KeyFinishedSince, p.FinishedSince},
	} {
		if err := security.ValidateFilterValue(f.name, f.value); err != nil {
			return nil, err
		}
	}
	if err := security.ValidateQuery(p.Query); err != nil {
		return nil, err
	}
	if err := p.Order.Validate(); err != nil {
		return nil, err
	}
	if err := security.ValidatePagination(p.Limit, p.Offset); err != nil {
		return nil, err
	}

	p.Query = security.SanitizeQuery(p.Query)
	p.Limit = security.ClampLimit(p.Limit)
	p.Offset = security.ClampOffset(p.Offset)

	plan := &Plan{params: p, now: now}

	if p.State != "" {
		plan.add(DimState, statePredicate(p.State, now))
	}
	if p.JobClass != "" {
		jobClass := p.JobClass
		plan.add(DimJobClass, func(j *core.Job) bool { return j.JobClass == jobClass })
	}
	if p.Queue != "" {
		queue := p.Queue
		plan.add(DimQueue, func(j *core.Job) bool { return j.Queue == queue })
	}
	if p.CronKey != "" {
		cronKey := p.CronKey
		plan.add(DimCronKey, func(j *core.Job) bool { return j.CronKey != nil && *j.CronKey == cronKey })
	}
	if p.FinishedSince != "" {
		threshold, err := ResolveRelative(p.FinishedSince, now)
		if err != nil {
			return nil, err
		}
		plan.FinishedThreshold = &threshold
		plan.add(DimFinishedSince, func(j *core.Job) bool {
			return j.FinishedAt != nil && !j.FinishedAt.Before(threshold)
		})
	}
	if p.Query != "" {
		plan.search = NewSearch(p.Query)
		plan.add(DimQuery, plan.search.Match)
	}

	return plan, nil
}

func statePredicate(state string, now time.Time) Predicate {
	if core.State(state) == core.StateFinished {
		return func(j *core.Job) bool { return core.Classify(j, now).Finished() }
	}
	want, ok := core.ParseState(state)
	if !ok {
		return func(*core.Job) bool { return false }
	}
	return func(j *core.Job) bool { return core.Classify(j, now) == want }
}

// ResolveSearch picks the query's mode from the record set it will filter:
// ID mode when some record has the query as its ID, text mode otherwise.
// It reports whether ID mode was chosen and must run before the plan is shared.
func (p *Plan) ResolveSearch(jobs []*core.Job) bool {
	if p.search == nil {
		return false
	}
	p.search.Resolve(jobs)
	return p.search.ByID()
}

func (p *Plan) add(dim Dimension, pred Predicate) {
	p.clauses = append(p.clauses, clause{dim: dim, pred: pred})
}

// Params returns the normalized parameters the plan was built from.
func (p *Plan) Params() Params { return p.params }

// Now returns the time the plan classifies against.
func (p *Plan) Now() time.Time { return p.now }

// Active reports whether dim has a filter.
func (p *Plan) Active(dim Dimension) bool {
	for _, c := range p.clauses {
		if c.dim == dim {
			return true
		}
	}
	return false
}

// Dimensions returns the active dimensions in evaluation order.
func (p *Plan) Dimensions() []Dimension {
	dims := make([]Dimension, len(p.clauses))
	for i, c := range p.clauses {
		dims[i] = c.dim
	}
	return dims
}

// Match reports whether job passes every active filter.
func (p *Plan) Match(job *core.Job) bool {
	return p.MatchExcept("", job)
}

// MatchExcept reports whether job passes every active filter other than dim.
func (p *Plan) MatchExcept(dim Dimension, job *core.Job) bool {
	for _, c := range p.clauses {
		if c.dim == dim {
			continue
		}
		if !c.pred(job) {
			return false
		}
	}
	return true
}

// Filter returns the jobs passing every active filter, preserving order.
func (p *Plan) Filter(jobs []*core.Job) []*core.Job {
	return p.FilterExcept("", jobs)
}

// FilterExcept returns the jobs passing every active filter other than dim.
func (p *Plan) FilterExcept(dim Dimension, jobs []*core.Job) []*core.Job {
	out := make([]*core.Job, 0, len(jobs))
	for _, j := range jobs {
		if p.MatchExcept(dim, j) {
			out = append(out, j)
		}
	}
	return out
}

// StoreQuery returns the store read needed to evaluate the plan and all of its facets.
// Only filters no facet ever lifts are pushed down.
func (p *Plan) StoreQuery() core.RecordQuery {
	return core.RecordQuery{
		CronKey:   p.params.CronKey,
		OrderBy:   core.OrderByCreatedAt,
		Ascending: false,
	}
}

// Materialize filters, sorts and paginates jobs into the plan's record sequence.
func (p *Plan) Materialize(jobs []*core.Job) []*core.Job {
	matched := p.Filter(jobs)
	Sort(matched, p.params.Order)
	return Paginate(matched, p.params.Limit, p.params.Offset)
}
