package ports

import (
	"context"

	"github.com/todoapp/todo-api/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
// The backing store enforces a unique index on email; Create surfaces a
// violation as domain.ErrEmailTaken so the check-then-insert race between
// two concurrent registrations always resolves at the store.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
