package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/todoapp/todo-api/internal/core/domain"
)

// TodoRepository implements ports.TodoRepository against the todos table.
// Every statement filters on user_id, so a todo owned by someone else is
// reported as not found.
type TodoRepository struct {
	db DB
}

func NewTodoRepository(db DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Todo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, completed, created_at
		 FROM todos WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]domain.Todo, 0)
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return todos, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	created := *todo
	err := r.db.QueryRow(ctx,
		`INSERT INTO todos (user_id, title) VALUES ($1, $2)
		 RETURNING id, completed, created_at`,
		todo.UserID, todo.Title,
	).Scan(&created.ID, &created.Completed, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return &created, nil
}

func (r *TodoRepository) MarkCompleted(ctx context.Context, userID, todoID int64) (*domain.Todo, error) {
	var t domain.Todo
	err := r.db.QueryRow(ctx,
		`UPDATE todos SET completed = TRUE
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, completed, created_at`,
		todoID, userID,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTodoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("complete todo: %w", err)
	}
	return &t, nil
}

func (r *TodoRepository) Delete(ctx context.Context, userID, todoID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND user_id = $2`,
		todoID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}
