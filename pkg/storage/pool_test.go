package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPoolConfig(t *testing.T) {
	cfg := DefaultPoolConfig()

	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 2, cfg.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
}

func TestPoolOptions(t *testing.T) {
	cfg := DefaultPoolConfig()
	for _, opt := range []PoolOption{MaxOpenConns(4), MaxIdleConns(1), ConnMaxLifetime(time.Minute)} {
		opt.applyPool(&cfg)
	}

	assert.Equal(t, 4, cfg.MaxOpenConns)
	assert.Equal(t, 1, cfg.MaxIdleConns)
	assert.Equal(t, time.Minute, cfg.ConnMaxLifetime)
}

func TestNewGormStorageWithPool(t *testing.T) {
	db := openTestDB(t)

	s, err := NewGormStorageWithPool(db, MaxOpenConns(3), MaxIdleConns(1))
	require.NoError(t, err)
	assert.Same(t, db, s.DB())

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 3, sqlDB.Stats().MaxOpenConnections)
}

func TestPoolConfig_IdleCappedAtOpen(t *testing.T) {
	db := openTestDB(t)

	_, err := NewGormStorageWithPool(db, MaxOpenConns(1), MaxIdleConns(5))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}
