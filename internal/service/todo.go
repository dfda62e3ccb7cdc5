package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/sun1tar/todo-grpc/internal/models"
	"github.com/sun1tar/todo-grpc/internal/repository"
)

// Виды ошибок сервиса; проверять через errors.Is
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
)

type itemInput struct {
	Title       string `validate:"notblank"`
	Description string `validate:"notblank"`
}

type idInput struct {
	ID int64 `validate:"gt=0"`
}

type updateInput struct {
	ID          int64  `validate:"gt=0"`
	Title       string `validate:"notblank"`
	Description string `validate:"notblank"`
}

type ToDoService struct {
	repo     repository.ToDoRepository
	validate *validator.Validate
}

func NewToDoService(repo repository.ToDoRepository) *ToDoService {
	v := validator.New()
	// notblank не входит в стандартный набор; регистрация падает только на пустом теге
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return &ToDoService{
		repo:     repo,
		validate: v,
	}
}

func (s *ToDoService) Create(ctx context.Context, title, description string) (int64, error) {
	if err := s.validate.Struct(itemInput{Title: title, Description: description}); err != nil {
		return 0, fmt.Errorf("%w: you must supply a non-blank title and description", ErrInvalidArgument)
	}

	item := &models.ToDoItem{
		Title:       title,
		Description: description,
		Status:      models.DefaultStatus,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return 0, err
	}
	return item.ID, nil
}

func (s *ToDoService) Read(ctx context.Context, id int64) (*models.ToDoItem, error) {
	if err := s.validateID(id); err != nil {
		return nil, err
	}
	return s.find(ctx, id)
}

func (s *ToDoService) List(ctx context.Context) ([]*models.ToDoItem, error) {
	return s.repo.List(ctx)
}

// Update перезаписывает title, description и status существующей задачи.
// Блокировок нет: при гонке побеждает последняя запись.
func (s *ToDoService) Update(ctx context.Context, id int64, title, description string, status models.Status) (int64, error) {
	in := updateInput{ID: id, Title: title, Description: description}
	if err := s.validate.Struct(in); err != nil {
		return 0, fmt.Errorf("%w: you must supply a positive id and a non-blank title and description", ErrInvalidArgument)
	}

	// Сначала проверяем, что задача существует
	item, err := s.find(ctx, id)
	if err != nil {
		return 0, err
	}

	item.Title = title
	item.Description = description
	item.Status = status

	// Строку могли удалить между чтением и записью - это тоже NotFound
	if err := s.repo.Update(ctx, item); err != nil {
		return 0, s.notFound(id, err)
	}
	return item.ID, nil
}

func (s *ToDoService) Delete(ctx context.Context, id int64) (int64, error) {
	if err := s.validateID(id); err != nil {
		return 0, err
	}

	item, err := s.find(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.repo.Delete(ctx, item.ID); err != nil {
		return 0, s.notFound(id, err)
	}
	return item.ID, nil
}

func (s *ToDoService) validateID(id int64) error {
	if err := s.validate.Struct(idInput{ID: id}); err != nil {
		return fmt.Errorf("%w: resource index must be greater than 0", ErrInvalidArgument)
	}
	return nil
}

func (s *ToDoService) find(ctx context.Context, id int64) (*models.ToDoItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFound(id, err)
	}
	return item, nil
}

// notFound translates the store's missing-row error; the row may also
// vanish between lookup and write.
func (s *ToDoService) notFound(id int64, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: no task with id %d", ErrNotFound, id)
	}
	return err
}
