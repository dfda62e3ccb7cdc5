package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sun1tar/todo-grpc/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormToDoRepository stores to-do items through GORM; the schema is kept
// in sync with AutoMigrate instead of goose.
type GormToDoRepository struct {
	db *gorm.DB
}

func NewGormToDoRepository(ctx context.Context, dsn string, pool PoolConfig, logger *logrus.Logger) (*GormToDoRepository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(logger, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return NewGormToDoRepositoryFromDB(db), nil
}

// NewGormToDoRepositoryFromDB wraps an already opened GORM handle.
func NewGormToDoRepositoryFromDB(db *gorm.DB) *GormToDoRepository {
	return &GormToDoRepository{db: db}
}

func (r *GormToDoRepository) AutoMigrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.ToDoItem{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (r *GormToDoRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *GormToDoRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *GormToDoRepository) Create(ctx context.Context, item *models.ToDoItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("insert to-do item: %w", err)
	}
	return nil
}

func (r *GormToDoRepository) GetByID(ctx context.Context, id int64) (*models.ToDoItem, error) {
	var item models.ToDoItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select to-do item %d: %w", id, err)
	}
	return &item, nil
}

func (r *GormToDoRepository) List(ctx context.Context) ([]*models.ToDoItem, error) {
	items := make([]*models.ToDoItem, 0)
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list to-do items: %w", err)
	}
	return items, nil
}

func (r *GormToDoRepository) Update(ctx context.Context, item *models.ToDoItem) error {
	result := r.db.WithContext(ctx).
		Model(&models.ToDoItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"title":        item.Title,
			"description":  item.Description,
			"to_do_status": item.Status,
		})
	if result.Error != nil {
		return fmt.Errorf("update to-do item %d: %w", item.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormToDoRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ToDoItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete to-do item %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
