package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdziat/jobs-filter/pkg/core"
)

func TestMemoryStorage_AddAssignsDefaults(t *testing.T) {
	s := NewMemoryStorage(&core.Job{JobClass: "ExampleJob"})

	jobs, err := s.ListJobs(context.Background(), core.RecordQuery{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.NotEmpty(t, jobs[0].ID)
	assert.Equal(t, "default", jobs[0].Queue)
}

func TestMemoryStorage_ReturnsCopies(t *testing.T) {
	s := NewMemoryStorage(testRecords()...)
	ctx := context.Background()

	jobs, err := s.ListJobs(ctx, core.RecordQuery{ID: "a"})
	require.NoError(t, err)
	jobs[0].Queue = "changed"

	jobs, err = s.ListJobs(ctx, core.RecordQuery{ID: "a"})
	require.NoError(t, err)
	assert.Equal(t, "default", jobs[0].Queue)
}

func TestMemoryStorage_CancelledContext(t *testing.T) {
	s := NewMemoryStorage(testRecords()...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListJobs(ctx, core.RecordQuery{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.CountJobs(ctx, core.RecordQuery{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStorage_ConcurrentReadsAndAdds(t *testing.T) {
	s := NewMemoryStorage(testRecords()...)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := s.ListJobs(ctx, core.RecordQuery{Queue: "default"})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			s.Add(&core.Job{JobClass: "ExampleJob"})
		}()
	}
	wg.Wait()

	total, err := s.CountJobs(ctx, core.RecordQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
}
