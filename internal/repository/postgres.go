package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sun1tar/todo-grpc/internal/models"
)

type PostgresToDoRepository struct {
	db *sql.DB
}

// PoolConfig bounds the database/sql connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func NewPostgresToDoRepository(ctx context.Context, dsn string, pool PoolConfig) (*PostgresToDoRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return NewPostgresToDoRepositoryFromDB(db), nil
}

// NewPostgresToDoRepositoryFromDB wraps an already opened handle. Схема не
// проверяется: вызывающий сам прогоняет Migrate.
func NewPostgresToDoRepositoryFromDB(db *sql.DB) *PostgresToDoRepository {
	return &PostgresToDoRepository{db: db}
}

func (r *PostgresToDoRepository) DB() *sql.DB {
	return r.db
}

func (r *PostgresToDoRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *PostgresToDoRepository) Close() error {
	return r.db.Close()
}

func (r *PostgresToDoRepository) Create(ctx context.Context, item *models.ToDoItem) error {
	query := `INSERT INTO to_do_items (title, description, to_do_status)
              VALUES ($1, $2, $3) RETURNING id`
	// id выдаёт BIGSERIAL, записываем его обратно в item
	err := r.db.QueryRowContext(ctx, query, item.Title, item.Description, item.Status).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert to-do item: %w", err)
	}
	return nil
}

func (r *PostgresToDoRepository) GetByID(ctx context.Context, id int64) (*models.ToDoItem, error) {
	query := `SELECT id, title, description, to_do_status FROM to_do_items WHERE id = $1`
	item := &models.ToDoItem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Title, &item.Description, &item.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select to-do item %d: %w", id, err)
	}
	return item, nil
}

func (r *PostgresToDoRepository) List(ctx context.Context) ([]*models.ToDoItem, error) {
	query := `SELECT id, title, description, to_do_status FROM to_do_items`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list to-do items: %w", err)
	}
	defer rows.Close()

	// Без ORDER BY: порядок хранилища. Пустая таблица - пустой срез, не nil
	items := make([]*models.ToDoItem, 0)
	for rows.Next() {
		item := &models.ToDoItem{}
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Status); err != nil {
			return nil, fmt.Errorf("scan to-do item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresToDoRepository) Update(ctx context.Context, item *models.ToDoItem) error {
	query := `UPDATE to_do_items SET title = $1, description = $2, to_do_status = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, item.Title, item.Description, item.Status, item.ID)
	if err != nil {
		return fmt.Errorf("update to-do item %d: %w", item.ID, err)
	}
	return expectOneRow(result)
}

func (r *PostgresToDoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM to_do_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete to-do item %d: %w", id, err)
	}
	return expectOneRow(result)
}

// expectOneRow: ноль затронутых строк значит, что записи с таким id нет
func expectOneRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
