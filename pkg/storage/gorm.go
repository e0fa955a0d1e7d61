// Package storage provides read adapters for job record stores.
package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jdziat/jobs-filter/pkg/core"
)

// GormStorage implements core.Store using GORM.
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage creates a new GORM-backed storage.
func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

// DB returns the underlying connection.
func (s *GormStorage) DB() *gorm.DB {
	return s.db
}

// Migrate creates the jobs table. Production schemas are owned by the job runner;
// this is for fixtures and local development.
func (s *GormStorage) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&core.Job{})
}

// Insert stores fixture records, assigning IDs and the default queue when unset.
func (s *GormStorage) Insert(ctx context.Context, jobs ...*core.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	for _, job := range jobs {
		prepareInsert(job)
	}
	return s.db.WithContext(ctx).Create(jobs).Error
}

// ListJobs returns the records matching q in q's order.
func (s *GormStorage) ListJobs(ctx context.Context, q core.RecordQuery) ([]*core.Job, error) {
	order, err := orderClause(q)
	if err != nil {
		return nil, err
	}

	tx := s.scoped(ctx, q).Order(order)
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var jobs []*core.Job
	if err := tx.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// CountJobs counts the records matching q.
func (s *GormStorage) CountJobs(ctx context.Context, q core.RecordQuery) (int64, error) {
	var total int64
	err := s.scoped(ctx, q).Count(&total).Error
	return total, err
}

func (s *GormStorage) scoped(ctx context.Context, q core.RecordQuery) *gorm.DB {
	tx := s.db.WithContext(ctx).Model(&core.Job{})
	if q.ID != "" {
		tx = tx.Where("id = ?", q.ID)
	}
	if q.JobClass != "" {
		tx = tx.Where("job_class = ?", q.JobClass)
	}
	if q.Queue != "" {
		tx = tx.Where("queue_name = ?", q.Queue)
	}
	if q.CronKey != "" {
		tx = tx.Where("cron_key = ?", q.CronKey)
	}
	return tx
}

func orderClause(q core.RecordQuery) (string, error) {
	dir := "DESC"
	if q.Ascending {
		dir = "ASC"
	}
	switch q.OrderBy {
	case "", core.OrderByCreatedAt:
		return fmt.Sprintf("created_at %s, id %s", dir, dir), nil
	case core.OrderByScheduledAt:
		return fmt.Sprintf("COALESCE(scheduled_at, created_at) %s, id %s", dir, dir), nil
	case core.OrderByFinishedAt:
		// Unfinished records last in either direction
		return fmt.Sprintf("CASE WHEN finished_at IS NULL THEN 1 ELSE 0 END, finished_at %s, id %s", dir, dir), nil
	}
	return "", fmt.Errorf("%w: unknown column %q", core.ErrInvalidOrder, q.OrderBy)
}

func prepareInsert(job *core.Job) {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.Queue == "" {
		job.Queue = "default"
	}
}
