// Package facet computes grouped counts over job records.
package facet

import (
	"time"

	"github.com/jdziat/jobs-filter/pkg/core"
)

// ByJobClass counts jobs per job class.
func ByJobClass(jobs []*core.Job) map[string]int64 {
	counts := make(map[string]int64)
	for _, j := range jobs {
		counts[j.JobClass]++
	}
	return counts
}

// ByQueue counts jobs per queue.
func ByQueue(jobs []*core.Job) map[string]int64 {
	counts := make(map[string]int64)
	for _, j := range jobs {
		counts[j.Queue]++
	}
	return counts
}

// ByState counts jobs per derived state at now.
// Every canonical state is present, with zero when no job has it.
func ByState(jobs []*core.Job, now time.Time) map[string]int64 {
	counts := make(map[string]int64, len(core.StateNames()))
	for _, s := range core.StateNames() {
		counts[string(s)] = 0
	}
	for _, j := range jobs {
		counts[string(core.Classify(j, now))]++
	}
	return counts
}
