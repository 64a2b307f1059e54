package ports

import (
	"context"

	"github.com/todoapp/todo-api/internal/core/domain"
)

// AuthResult is returned by a successful registration or login. It carries
// the signed session token and the public view of the user; the password
// hash never crosses this boundary.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, email, plaintext string) (*AuthResult, error)
	Login(ctx context.Context, email, plaintext string) (*AuthResult, error)
}
