package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	DriverPostgres = "postgres"
	DriverGorm     = "gorm"
	DriverMemory   = "memory"
)

type Options struct {
	Driver string
	DSN    string
	Pool   PoolConfig
}

// Open connects the configured backend and brings its schema up to date.
func Open(ctx context.Context, opts Options, logger *logrus.Logger) (Store, error) {
	switch opts.Driver {
	case DriverPostgres:
		repo, err := NewPostgresToDoRepository(ctx, opts.DSN, opts.Pool)
		if err != nil {
			return nil, err
		}
		if err := Migrate(ctx, repo.DB(), logger); err != nil {
			_ = repo.Close()
			return nil, err
		}
		return repo, nil
	case DriverGorm:
		repo, err := NewGormToDoRepository(ctx, opts.DSN, opts.Pool, logger)
		if err != nil {
			return nil, err
		}
		if err := repo.AutoMigrate(ctx); err != nil {
			_ = repo.Close()
			return nil, err
		}
		return repo, nil
	case DriverMemory:
		logger.Warn("using in-memory store, data is lost on restart")
		return NewMemoryToDoRepository(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", opts.Driver)
	}
}
