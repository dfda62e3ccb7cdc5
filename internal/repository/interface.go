package repository

import (
	"context"
	"errors"

	"github.com/sun1tar/todo-grpc/internal/models"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("to-do item not found")

// ToDoRepository is the single-table store the service persists through.
// Create assigns item.ID; Update overwrites title, description and status.
type ToDoRepository interface {
	Create(ctx context.Context, item *models.ToDoItem) error
	GetByID(ctx context.Context, id int64) (*models.ToDoItem, error)
	List(ctx context.Context) ([]*models.ToDoItem, error)
	Update(ctx context.Context, item *models.ToDoItem) error
	Delete(ctx context.Context, id int64) error
}

// Store is a ToDoRepository owning a connection lifecycle.
type Store interface {
	ToDoRepository
	Ping(ctx context.Context) error
	Close() error
}
