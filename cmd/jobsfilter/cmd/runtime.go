package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jdziat/jobs-filter/pkg/core"
	"github.com/jdziat/jobs-filter/pkg/storage"
)

// runtime holds what a command needs after configuration is resolved.
type runtime struct {
	logger *slog.Logger
	store  core.Store
	close  func() error
}

func newRuntime(ctx context.Context, v *viper.Viper, stderr io.Writer) (*runtime, error) {
	log, err := newLogger(stderr, v.GetString(keyLogFormat), v.GetString(keyLogLevel))
	if err != nil {
		return nil, err
	}

	store, closeFn, err := openStore(ctx, v)
	if err != nil {
		return nil, err
	}
	log.DebugContext(ctx, "record store opened", "kind", storeKind(v.GetString(keyDatabase)))

	return &runtime{logger: log, store: store, close: closeFn}, nil
}

func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

func storeKind(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		return "redis"
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "postgres"
	default:
		return "sqlite"
	}
}

// openStore picks an adapter from the DSN's scheme. Anything without a
// recognized scheme is treated as a sqlite file path.
func openStore(ctx context.Context, v *viper.Viper) (core.Store, func() error, error) {
	dsn := v.GetString(keyDatabase)
	if dsn == "" {
		return nil, nil, fmt.Errorf("no database configured (use --database or %s_DATABASE)", envPrefix)
	}

	if storeKind(dsn) == "redis" {
		opt, err := redis.ParseURL(dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		return storage.NewRedisStorage(client, storage.WithRedisKey(v.GetString(keyRedisKey))), client.Close, nil
	}

	var dialector gorm.Dialector
	if storeKind(dsn) == "postgres" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(strings.TrimPrefix(dsn, "sqlite://"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	s, err := storage.NewGormStorageWithPool(db, storage.MaxOpenConns(v.GetInt(keyMaxOpenConns)))
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	return s, sqlDB.Close, nil
}
