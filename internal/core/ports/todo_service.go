package ports

import (
	"context"

	"github.com/todoapp/todo-api/internal/core/domain"
)

type TodoService interface {
	List(ctx context.Context, userID int64) ([]domain.Todo, error)
	Create(ctx context.Context, userID int64, title string) (*domain.Todo, error)
	Complete(ctx context.Context, userID, todoID int64) (*domain.Todo, error)
	Delete(ctx context.Context, userID, todoID int64) error
}
