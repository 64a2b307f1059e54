package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/todoapp/todo-api/internal/core/domain"
	"github.com/todoapp/todo-api/internal/core/ports"
	"github.com/todoapp/todo-api/internal/pkg/password"
	"github.com/todoapp/todo-api/internal/pkg/token"
)

// AuthService implements registration and login. Both flows are terminal
// after one transition and side-effect-free on failure.
type AuthService struct {
	repo     ports.AuthRepository
	secret   []byte
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, secret []byte, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, secret: secret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, email, plaintext string) (*ports.AuthResult, error) {
	if email == "" || plaintext == "" {
		return nil, domain.ErrInvalidInput
	}

	// Fast duplicate check. Not authoritative: the unique index on email is,
	// and Create maps its violation to the same error.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		s.log.Debug().Str("email", email).Msg("registration rejected: email taken")
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			s.log.Debug().Str("email", email).Msg("registration lost insert race: email taken")
		}
		return nil, err
	}

	signed, err := token.Issue(created.ID, created.Email, s.secret, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{Token: signed, User: created}, nil
}

func (s *AuthService) Login(ctx context.Context, email, plaintext string) (*ports.AuthResult, error) {
	if email == "" || plaintext == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Internally distinguishable from a bad password, externally not.
			s.log.Debug().Str("email", email).Msg("login rejected: unknown email")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		s.log.Debug().Str("email", email).Msg("login rejected: password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := token.Issue(user.ID, user.Email, s.secret, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{Token: signed, User: user}, nil
}
