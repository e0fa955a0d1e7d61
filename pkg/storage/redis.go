package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jdziat/jobs-filter/pkg/core"
)

// DefaultRedisKey is the hash holding JSON-encoded records keyed by job ID.
const DefaultRedisKey = "jobs:records"

// RedisOption configures a RedisStorage.
type RedisOption interface {
	applyRedis(*RedisStorage)
}

type redisOptionFunc func(*RedisStorage)

func (f redisOptionFunc) applyRedis(s *RedisStorage) { f(s) }

// WithRedisKey sets the hash key records are read from.
func WithRedisKey(key string) RedisOption {
	return redisOptionFunc(func(s *RedisStorage) {
		if key != "" {
			s.key = key
		}
	})
}

// RedisStorage implements core.Store over a Redis hash of JSON records.
type RedisStorage struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStorage creates a Redis-backed storage.
func NewRedisStorage(client redis.UniversalClient, opts ...RedisOption) *RedisStorage {
	s := &RedisStorage{client: client, key: DefaultRedisKey}
	for _, opt := range opts {
		opt.applyRedis(s)
	}
	return s
}

// Insert stores fixture records, assigning IDs and the default queue when unset.
func (s *RedisStorage) Insert(ctx context.Context, jobs ...*core.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	fields := make(map[string]any, len(jobs))
	for _, job := range jobs {
		prepareInsert(job)
		data, err := json.Marshal(job)
		if err != nil {
			return fmt.Errorf("jobs: encode record %s: %w", job.ID, err)
		}
		fields[job.ID] = data
	}
	return s.client.HSet(ctx, s.key, fields).Err()
}

// ListJobs returns the records matching q in q's order.
func (s *RedisStorage) ListJobs(ctx context.Context, q core.RecordQuery) ([]*core.Job, error) {
	jobs, err := s.load(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	return applyRecordQuery(jobs, q)
}

// CountJobs counts the records matching q.
func (s *RedisStorage) CountJobs(ctx context.Context, q core.RecordQuery) (int64, error) {
	if !q.Narrowed() {
		return s.client.HLen(ctx, s.key).Result()
	}
	jobs, err := s.load(ctx, q.ID)
	if err != nil {
		return 0, err
	}
	return countRecords(jobs, q), nil
}

// load reads one record when id is set, otherwise every record.
func (s *RedisStorage) load(ctx context.Context, id string) ([]*core.Job, error) {
	var raw []string
	if id != "" {
		v, err := s.client.HGet(ctx, s.key, id).Result()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		raw = []string{v}
	} else {
		vals, err := s.client.HVals(ctx, s.key).Result()
		if err != nil {
			return nil, err
		}
		raw = vals
	}

	jobs := make([]*core.Job, 0, len(raw))
	for _, v := range raw {
		var job core.Job
		if err := json.Unmarshal([]byte(v), &job); err != nil {
			return nil, fmt.Errorf("jobs: decode record: %w", err)
		}
		jobs = append(jobs, &job)
	}
	return jobs, nil
}
