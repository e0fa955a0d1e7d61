package storage

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// PoolConfig sizes the connection pool a reader keeps open. Readers share the
// database with the job runner, so the defaults stay small.
type PoolConfig struct {
	MaxOpenConns    int           // Default 10
	MaxIdleConns    int           // Default 2; capped at MaxOpenConns
	ConnMaxLifetime time.Duration // Default 30m; 0 keeps connections forever
}

// DefaultPoolConfig returns the pool used by NewGormStorageWithPool.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{MaxOpenConns: 10, MaxIdleConns: 2, ConnMaxLifetime: 30 * time.Minute}
}

func (c PoolConfig) configure(db *sql.DB) {
	idle := c.MaxIdleConns
	if c.MaxOpenConns > 0 && idle > c.MaxOpenConns {
		idle = c.MaxOpenConns
	}
	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(idle)
	db.SetConnMaxLifetime(c.ConnMaxLifetime)
}

// PoolOption overrides one PoolConfig field.
type PoolOption interface {
	applyPool(*PoolConfig)
}

type poolOptionFunc func(*PoolConfig)

func (f poolOptionFunc) applyPool(c *PoolConfig) { f(c) }

// MaxOpenConns limits open connections. Values <= 0 leave the pool unbounded.
func MaxOpenConns(n int) PoolOption {
	return poolOptionFunc(func(c *PoolConfig) { c.MaxOpenConns = n })
}

// MaxIdleConns limits idle connections.
func MaxIdleConns(n int) PoolOption {
	return poolOptionFunc(func(c *PoolConfig) { c.MaxIdleConns = n })
}

// ConnMaxLifetime closes connections after d.
func ConnMaxLifetime(d time.Duration) PoolOption {
	return poolOptionFunc(func(c *PoolConfig) { c.ConnMaxLifetime = d })
}

// NewGormStorageWithPool sizes db's pool for reading and wraps it in a GormStorage.
//
//	s, err := storage.NewGormStorageWithPool(db, storage.MaxOpenConns(4))
func NewGormStorageWithPool(db *gorm.DB, opts ...PoolOption) (*GormStorage, error) {
	cfg := DefaultPoolConfig()
	for _, opt := range opts {
		opt.applyPool(&cfg)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("jobs: open record store pool: %w", err)
	}
	cfg.configure(sqlDB)
	return NewGormStorage(db), nil
}
