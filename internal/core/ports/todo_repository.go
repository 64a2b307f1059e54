package ports

import (
	"context"

	"github.com/todoapp/todo-api/internal/core/domain"
)

// TodoRepository defines the interface for todo persistence. Every operation
// is scoped by user id; a row that exists but belongs to another user is
// indistinguishable from one that does not exist.
type TodoRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Todo, error)
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	MarkCompleted(ctx context.Context, userID, todoID int64) (*domain.Todo, error)
	Delete(ctx context.Context, userID, todoID int64) error
}
