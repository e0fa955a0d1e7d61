package facet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jdziat/jobs-filter/pkg/core"
)

func TestByJobClass(t *testing.T) {
	jobs := []*core.Job{
		{JobClass: "ExampleJob"},
		{JobClass: "ExampleJob"},
		{JobClass: "Billing::InvoiceJob"},
	}
	assert.Equal(t, map[string]int64{"ExampleJob": 2, "Billing::InvoiceJob": 1}, ByJobClass(jobs))
	assert.Empty(t, ByJobClass(nil))
}

func TestByQueue(t *testing.T) {
	jobs := []*core.Job{
		{Queue: "default"},
		{Queue: "mice"},
		{Queue: "default"},
	}
	assert.Equal(t, map[string]int64{"default": 2, "mice": 1}, ByQueue(jobs))
}

func TestByState_AlwaysHasEveryState(t *testing.T) {
	counts := ByState(nil, time.Now())
	assert.Len(t, counts, 6)
	for _, s := range core.StateNames() {
		assert.Contains(t, counts, string(s))
		assert.Zero(t, counts[string(s)])
	}
	assert.NotContains(t, counts, string(core.StateFinished))
}

func TestByState_Counts(t *testing.T) {
	now := time.Now()
	later := now.Add(time.Hour)
	earlier := now.Add(-time.Hour)

	jobs := []*core.Job{
		{ScheduledAt: &later},
		{},
		{},
		{PerformedAt: &earlier},
		{FinishedAt: &now, Error: "boom"},
	}

	assert.Equal(t, map[string]int64{
		"scheduled": 1,
		"retried":   0,
		"queued":    2,
		"running":   1,
		"succeeded": 0,
		"discarded": 1,
	}, ByState(jobs, now))
}
