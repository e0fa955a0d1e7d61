package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jdziat/jobs-filter/pkg/core"
)

// openTestDB opens a database for tests.
// When TEST_DATABASE_URL is set it connects to PostgreSQL; otherwise it
// opens a fresh in-memory SQLite instance.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		require.NoError(t, err, "open postgres test db")

		sqlDB, err := db.DB()
		require.NoError(t, err, "get underlying sql.DB")
		sqlDB.SetMaxOpenConns(2)
		sqlDB.SetMaxIdleConns(1)

		cleanupPostgresDB(db)
		t.Cleanup(func() {
			cleanupPostgresDB(db)
			_ = sqlDB.Close()
		})
		return db
	}
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open in-memory sqlite")

	// Every new connection to :memory: is a separate empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err, "get underlying sql.DB")
	sqlDB.SetMaxOpenConns(1)
	return db
}

func cleanupPostgresDB(db *gorm.DB) {
	db.Exec("DELETE FROM jobs")
}

// newTestStorage creates a migrated storage for each test.
func newTestStorage(t *testing.T) *GormStorage {
	t.Helper()
	s := NewGormStorage(openTestDB(t))
	require.NoError(t, s.Migrate(context.Background()), "migrate schema")
	return s
}

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func ptrTime(d time.Duration) *time.Time {
	t := baseTime.Add(d)
	return &t
}

func ptrString(s string) *string { return &s }

// testRecords returns four records in three queues, created a minute apart.
func testRecords() []*core.Job {
	return []*core.Job{
		{ID: "a", JobClass: "ExampleJob", Queue: "default", CreatedAt: baseTime, FinishedAt: ptrTime(time.Hour)},
		{ID: "b", JobClass: "ExampleJob", Queue: "cron", CronKey: ptrString("frequent_cron"), CreatedAt: baseTime.Add(time.Minute)},
		{ID: "c", JobClass: "OtherJob", Queue: "mice", CreatedAt: baseTime.Add(2 * time.Minute), ScheduledAt: ptrTime(time.Hour), FinishedAt: ptrTime(2 * time.Hour)},
		{ID: "d", JobClass: "ExampleJob", Queue: "default", CreatedAt: baseTime.Add(3 * time.Minute), Error: "ExampleJob::DeadError: boom"},
	}
}

func ids(jobs []*core.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}
