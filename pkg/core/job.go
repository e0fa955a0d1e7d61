// Package core provides the record model, derived states and store contract for the jobs filter.
package core

import (
	"time"
)

// Job is one execution attempt of a background job as persisted by the job runner.
// The filter never writes these records.
type Job struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id" yaml:"id"`
	JobClass     string     `gorm:"index;size:255;not null" json:"job_class" yaml:"job_class"`
	Queue        string     `gorm:"column:queue_name;index;size:255;default:'default'" json:"queue_name" yaml:"queue_name"`
	CronKey      *string    `gorm:"index;size:255" json:"cron_key,omitempty" yaml:"cron_key,omitempty"`
	ScheduledAt  *time.Time `gorm:"index" json:"scheduled_at,omitempty" yaml:"scheduled_at,omitempty"`
	PerformedAt  *time.Time `json:"performed_at,omitempty" yaml:"performed_at,omitempty"`
	FinishedAt   *time.Time `gorm:"index" json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
	Error        string     `gorm:"type:text" json:"error,omitempty" yaml:"error,omitempty"`
	RetriedJobID *string    `gorm:"size:36" json:"retried_job_id,omitempty" yaml:"retried_job_id,omitempty"` // Next attempt after this one errored
	CreatedAt    time.Time  `gorm:"index" json:"created_at" yaml:"created_at"`
}

// State derives the job's lifecycle state at now.
func (j *Job) State(now time.Time) State {
	return Classify(j, now)
}

// HasError reports whether the most recent attempt raised an error.
func (j *Job) HasError() bool {
	return j.Error != ""
}
