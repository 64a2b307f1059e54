package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/todoapp/todo-api/internal/api/metrics"
	"github.com/todoapp/todo-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// TodoCache is a per-user read cache for todo lists, backed by Redis.
// Key format: todos:<user_id>. The TTL is a safety net only; every mutation
// invalidates the user's entry eagerly, so reads never serve a stale list
// longer than the gap between write and invalidation.
type TodoCache struct {
	client *redis.Client
}

// NewTodoCache creates a TodoCache wrapping the given Redis client.
func NewTodoCache(client *redis.Client) *TodoCache {
	return &TodoCache{client: client}
}

// Get returns the cached list for userID and whether it was present.
func (c *TodoCache) Get(ctx context.Context, userID int64) ([]domain.Todo, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.TodoCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var todos []domain.Todo
	if err := json.Unmarshal(raw, &todos); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it.
		metrics.TodoCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}

	metrics.TodoCacheTotal.WithLabelValues("hit").Inc()
	return todos, true, nil
}

// Set stores the list for userID (expires after cacheTTL).
func (c *TodoCache) Set(ctx context.Context, userID int64, todos []domain.Todo) error {
	raw, err := json.Marshal(todos)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(userID), raw, cacheTTL).Err()
}

// Invalidate drops the cached list for userID.
func (c *TodoCache) Invalidate(ctx context.Context, userID int64) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *TodoCache) key(userID int64) string {
	return fmt.Sprintf("todos:%d", userID)
}
