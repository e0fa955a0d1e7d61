package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jdziat/jobs-filter/pkg/core"
)

// Order sorts records by one timestamp column. The zero value is created_at descending.
// Ties are broken by ID in the same direction, numerically when both IDs are integers.
type Order struct {
	By        string // core.OrderBy* column; empty means created_at
	Ascending bool
}

// ParseOrder parses "<column> [asc|desc]". An empty string is the default order.
func ParseOrder(s string) (Order, error) {
	fields := strings.Fields(strings.ToLower(s))
	var o Order
	switch len(fields) {
	case 0:
		return o, nil
	case 2:
		switch fields[1] {
		case "asc":
			o.Ascending = true
		case "desc":
		default:
			return Order{}, fmt.Errorf("%w: %q", core.ErrInvalidOrder, s)
		}
		fallthrough
	case 1:
		o.By = fields[0]
	default:
		return Order{}, fmt.Errorf("%w: %q", core.ErrInvalidOrder, s)
	}
	if err := o.Validate(); err != nil {
		return Order{}, err
	}
	return o, nil
}

// Validate reports whether o names a known column.
func (o Order) Validate() error {
	switch o.column() {
	case core.OrderByCreatedAt, core.OrderByScheduledAt, core.OrderByFinishedAt:
		return nil
	}
	return fmt.Errorf("%w: unknown column %q", core.ErrInvalidOrder, o.By)
}

// IsDefault reports whether o is created_at descending.
func (o Order) IsDefault() bool {
	return o.column() == core.OrderByCreatedAt && !o.Ascending
}

func (o Order) String() string {
	if o.Ascending {
		return o.column() + " asc"
	}
	return o.column() + " desc"
}

func (o Order) column() string {
	if o.By == "" {
		return core.OrderByCreatedAt
	}
	return o.By
}

// Sort orders jobs in place. Records without a finished_at sort last for
// finished_at ordering in either direction.
func Sort(jobs []*core.Job, o Order) {
	col := o.column()
	sort.SliceStable(jobs, func(i, j int) bool {
		a, b := jobs[i], jobs[j]
		ta, oka := orderKey(a, col)
		tb, okb := orderKey(b, col)
		if oka != okb {
			return oka
		}
		if !ta.Equal(tb) {
			if o.Ascending {
				return ta.Before(tb)
			}
			return ta.After(tb)
		}
		if o.Ascending {
			return lessID(a.ID, b.ID)
		}
		return lessID(b.ID, a.ID)
	})
}

// lessID orders integer-like IDs numerically and any other IDs lexically.
func lessID(a, b string) bool {
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

func orderKey(job *core.Job, col string) (time.Time, bool) {
	switch col {
	case core.OrderByScheduledAt:
		if job.ScheduledAt != nil {
			return *job.ScheduledAt, true
		}
		return job.CreatedAt, true
	case core.OrderByFinishedAt:
		if job.FinishedAt != nil {
			return *job.FinishedAt, true
		}
		return time.Time{}, false
	default:
		return job.CreatedAt, true
	}
}

// Paginate returns the window of jobs starting at offset with at most limit items.
// limit <= 0 means no limit.
func Paginate(jobs []*core.Job, limit, offset int) []*core.Job {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(jobs) {
		return []*core.Job{}
	}
	end := len(jobs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return jobs[offset:end]
}
