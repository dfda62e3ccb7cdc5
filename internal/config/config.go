package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sun1tar/todo-grpc/internal/repository"
)

type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER" env-default:"postgres"` // postgres, gorm or memory
	Host            string        `env:"DB_HOST" env-default:"localhost"`
	Port            string        `env:"DB_PORT" env-default:"5432"`
	User            string        `env:"DB_USER" env-default:"todo_user"`
	Password        string        `env:"DB_PASSWORD" env-default:"todo_pass"`
	DBName          string        `env:"DB_NAME" env-default:"todo_db"`
	SSLMode         string        `env:"DB_SSLMODE" env-default:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"30m"`
}

type Config struct {
	GRPCPort        string        `env:"TODO_GRPC_PORT" env-default:"50051"`
	OpsPort         string        `env:"TODO_OPS_PORT" env-default:"8082"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	DB              DatabaseConfig
}

// Load reads an optional .env file from the working directory, then the
// process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	switch cfg.DB.Driver {
	case repository.DriverPostgres, repository.DriverGorm, repository.DriverMemory:
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
	return &cfg, nil
}

func (db *DatabaseConfig) DSN() string {
	switch db.Driver {
	case repository.DriverPostgres, repository.DriverGorm:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			db.Host, db.Port, db.User, db.Password, db.DBName, db.SSLMode)
	default:
		return ""
	}
}

// StoreOptions maps the database section onto repository.Open options.
func (db *DatabaseConfig) StoreOptions() repository.Options {
	return repository.Options{
		Driver: db.Driver,
		DSN:    db.DSN(),
		Pool: repository.PoolConfig{
			MaxOpenConns:    db.MaxOpenConns,
			MaxIdleConns:    db.MaxIdleConns,
			ConnMaxLifetime: db.ConnMaxLifetime,
		},
	}
}
