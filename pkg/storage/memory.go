package storage

import (
	"context"
	"sync"

	"github.com/jdziat/jobs-filter/pkg/core"
)

// MemoryStorage implements core.Store over an in-process record set.
// Reads return copies, so callers never share records with the store.
type MemoryStorage struct {
	mu   sync.RWMutex
	jobs []*core.Job
}

// NewMemoryStorage creates a store holding copies of jobs.
func NewMemoryStorage(jobs ...*core.Job) *MemoryStorage {
	s := &MemoryStorage{}
	s.Add(jobs...)
	return s
}

// Add stores copies of jobs, assigning IDs and the default queue when unset.
func (s *MemoryStorage) Add(jobs ...*core.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range jobs {
		prepareInsert(j)
		s.jobs = append(s.jobs, cloneJob(j))
	}
}

// ListJobs returns copies of the records matching q in q's order.
func (s *MemoryStorage) ListJobs(ctx context.Context, q core.RecordQuery) ([]*core.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	snapshot := make([]*core.Job, len(s.jobs))
	for i, j := range s.jobs {
		snapshot[i] = cloneJob(j)
	}
	s.mu.RUnlock()

	return applyRecordQuery(snapshot, q)
}

// CountJobs counts the records matching q.
func (s *MemoryStorage) CountJobs(ctx context.Context, q core.RecordQuery) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return countRecords(s.jobs, q), nil
}
