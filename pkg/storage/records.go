package storage

import (
	"github.com/jdziat/jobs-filter/pkg/core"
	"github.com/jdziat/jobs-filter/pkg/query"
)

// matchRecord applies q's equality filters.
func matchRecord(job *core.Job, q core.RecordQuery) bool {
	if q.ID != "" && job.ID != q.ID {
		return false
	}
	if q.JobClass != "" && job.JobClass != q.JobClass {
		return false
	}
	if q.Queue != "" && job.Queue != q.Queue {
		return false
	}
	if q.CronKey != "" && (job.CronKey == nil || *job.CronKey != q.CronKey) {
		return false
	}
	return true
}

// applyRecordQuery narrows, orders and windows an in-process record set.
// The input slice is not modified.
func applyRecordQuery(jobs []*core.Job, q core.RecordQuery) ([]*core.Job, error) {
	order := query.Order{By: q.OrderBy, Ascending: q.Ascending}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	matched := make([]*core.Job, 0, len(jobs))
	for _, j := range jobs {
		if matchRecord(j, q) {
			matched = append(matched, j)
		}
	}
	query.Sort(matched, order)
	return query.Paginate(matched, q.Limit, q.Offset), nil
}

func countRecords(jobs []*core.Job, q core.RecordQuery) int64 {
	var n int64
	for _, j := range jobs {
		if matchRecord(j, q) {
			n++
		}
	}
	return n
}

func cloneJob(j *core.Job) *core.Job {
	c := *j
	return &c
}
