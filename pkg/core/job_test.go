package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJob_Defaults(t *testing.T) {
	job := &Job{}
	assert.Empty(t, job.ID)
	assert.Empty(t, job.JobClass)
	assert.Empty(t, job.Queue)
	assert.Nil(t, job.CronKey)
	assert.False(t, job.HasError())
	assert.Equal(t, StateQueued, job.State(time.Now()))
}

func TestJob_WithValues(t *testing.T) {
	now := time.Now()
	cron := "frequent_cron"
	job := &Job{
		ID:          "test-123",
		JobClass:    "ExampleJob",
		Queue:       "cron",
		CronKey:     &cron,
		PerformedAt: &now,
		Error:       "ExampleJob::DeadError: boom",
	}

	assert.Equal(t, "test-123", job.ID)
	assert.Equal(t, "ExampleJob", job.JobClass)
	assert.Equal(t, "cron", job.Queue)
	assert.Equal(t, "frequent_cron", *job.CronKey)
	assert.True(t, job.HasError())
	assert.Equal(t, StateRunning, job.State(now))
}
