package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/sun1tar/todo-grpc/internal/models"
)

// MemoryToDoRepository keeps items in process memory. Ids start at 1 and
// are never reused, matching a database sequence.
type MemoryToDoRepository struct {
	mu     sync.RWMutex
	items  map[int64]models.ToDoItem
	nextID int64
}

func NewMemoryToDoRepository() *MemoryToDoRepository {
	return &MemoryToDoRepository{
		items:  make(map[int64]models.ToDoItem),
		nextID: 1,
	}
}

func (r *MemoryToDoRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (r *MemoryToDoRepository) Close() error {
	return nil
}

func (r *MemoryToDoRepository) Create(ctx context.Context, item *models.ToDoItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryToDoRepository) GetByID(ctx context.Context, id int64) (*models.ToDoItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (r *MemoryToDoRepository) List(ctx context.Context) ([]*models.ToDoItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*models.ToDoItem, 0, len(r.items))
	for _, item := range r.items {
		item := item
		items = append(items, &item)
	}
	// insertion order, like a heap table without updates
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *MemoryToDoRepository) Update(ctx context.Context, item *models.ToDoItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return ErrNotFound
	}
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryToDoRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
