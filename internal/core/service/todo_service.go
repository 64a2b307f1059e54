package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/todoapp/todo-api/internal/core/domain"
	"github.com/todoapp/todo-api/internal/core/ports"
)

// TodoCache abstracts the per-user list cache (Redis). All methods are
// best-effort: a failure degrades to the repository, never the request.
type TodoCache interface {
	Get(ctx context.Context, userID int64) ([]domain.Todo, bool, error)
	Set(ctx context.Context, userID int64, todos []domain.Todo) error
	Invalidate(ctx context.Context, userID int64) error
}

type todoService struct {
	repo  ports.TodoRepository
	cache TodoCache
	log   zerolog.Logger
}

// NewTodoService returns a TodoService implementation. cache may be nil, in
// which case every read hits the repository.
func NewTodoService(repo ports.TodoRepository, cache TodoCache, log zerolog.Logger) ports.TodoService {
	return &todoService{repo: repo, cache: cache, log: log}
}

func (s *todoService) List(ctx context.Context, userID int64) ([]domain.Todo, error) {
	if s.cache != nil {
		todos, hit, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.log.Warn().Err(err).Int64("user_id", userID).Msg("todo cache read failed, falling back to store")
		} else if hit {
			return todos, nil
		}
	}

	todos, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, todos); err != nil {
			s.log.Warn().Err(err).Int64("user_id", userID).Msg("todo cache write failed")
		}
	}
	return todos, nil
}

func (s *todoService) Create(ctx context.Context, userID int64, title string) (*domain.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.repo.Create(ctx, &domain.Todo{UserID: userID, Title: title})
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	s.invalidate(ctx, userID)
	return created, nil
}

func (s *todoService) Complete(ctx context.Context, userID, todoID int64) (*domain.Todo, error) {
	updated, err := s.repo.MarkCompleted(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	return updated, nil
}

func (s *todoService) Delete(ctx context.Context, userID, todoID int64) error {
	if err := s.repo.Delete(ctx, userID, todoID); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *todoService) invalidate(ctx context.Context, userID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("todo cache invalidation failed")
	}
}
