package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/todoapp/todo-api/internal/core/domain"
)

type stubTodoService struct {
	listFn     func(ctx context.Context, userID int64) ([]domain.Todo, error)
	createFn   func(ctx context.Context, userID int64, title string) (*domain.Todo, error)
	completeFn func(ctx context.Context, userID, todoID int64) (*domain.Todo, error)
	deleteFn   func(ctx context.Context, userID, todoID int64) error
}

func (s *stubTodoService) List(ctx context.Context, userID int64) ([]domain.Todo, error) {
	return s.listFn(ctx, userID)
}

func (s *stubTodoService) Create(ctx context.Context, userID int64, title string) (*domain.Todo, error) {
	return s.createFn(ctx, userID, title)
}

func (s *stubTodoService) Complete(ctx context.Context, userID, todoID int64) (*domain.Todo, error) {
	return s.completeFn(ctx, userID, todoID)
}

func (s *stubTodoService) Delete(ctx context.Context, userID, todoID int64) error {
	return s.deleteFn(ctx, userID, todoID)
}

func newTodoTestContext(t *testing.T, method, path, body string, authenticated bool) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if authenticated {
		c.Set("user_id", int64(7))
		c.Set("email", "alice@example.com")
	}
	return c, rec, e
}

func TestTodoHandler_List_Success(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubTodoService{
		listFn: func(ctx context.Context, userID int64) ([]domain.Todo, error) {
			if userID != 7 {
				t.Fatalf("expected user 7, got %d", userID)
			}
			return []domain.Todo{
				{ID: 1, UserID: 7, Title: "buy milk", Completed: false, CreatedAt: now},
				{ID: 2, UserID: 7, Title: "write tests", Completed: true, CreatedAt: now},
			}, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec, _ := newTodoTestContext(t, http.MethodGet, "/api/todos", "", true)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(resp))
	}
	if resp[0]["title"] != "buy milk" || resp[1]["completed"] != true {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestTodoHandler_List_Unauthenticated(t *testing.T) {
	stub := &stubTodoService{
		listFn: func(ctx context.Context, userID int64) ([]domain.Todo, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec, e := newTodoTestContext(t, http.MethodGet, "/api/todos", "", false)
	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestTodoHandler_Create_Success(t *testing.T) {
	stub := &stubTodoService{
		createFn: func(ctx context.Context, userID int64, title string) (*domain.Todo, error) {
			if userID != 7 || title != "new task" {
				t.Fatalf("unexpected args: %d %q", userID, title)
			}
			return &domain.Todo{ID: 3, UserID: userID, Title: title}, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec, _ := newTodoTestContext(t, http.MethodPost, "/api/todos", `{"title":"new task"}`, true)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(3) || resp["title"] != "new task" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestTodoHandler_Create_EmptyTitle(t *testing.T) {
	stub := &stubTodoService{
		createFn: func(ctx context.Context, userID int64, title string) (*domain.Todo, error) {
			return nil, domain.ErrInvalidInput
		},
	}
	h := NewTodoHandler(stub)

	c, rec, _ := newTodoTestContext(t, http.MethodPost, "/api/todos", `{"title":"  "}`, true)
	_ = h.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTodoHandler_Complete_Success(t *testing.T) {
	stub := &stubTodoService{
		completeFn: func(ctx context.Context, userID, todoID int64) (*domain.Todo, error) {
			if userID != 7 || todoID != 5 {
				t.Fatalf("unexpected args: %d %d", userID, todoID)
			}
			return &domain.Todo{ID: 5, UserID: 7, Title: "done", Completed: true}, nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec, _ := newTodoTestContext(t, http.MethodPut, "/api/todos/5/complete", "", true)
	c.SetParamNames("id")
	c.SetParamValues("5")
	if err := h.Complete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["completed"] != true {
		t.Fatalf("expected completed todo, got %+v", resp)
	}
}

func TestTodoHandler_Complete_NotFound(t *testing.T) {
	stub := &stubTodoService{
		completeFn: func(ctx context.Context, userID, todoID int64) (*domain.Todo, error) {
			return nil, domain.ErrTodoNotFound
		},
	}
	h := NewTodoHandler(stub)

	c, rec, _ := newTodoTestContext(t, http.MethodPut, "/api/todos/99/complete", "", true)
	c.SetParamNames("id")
	c.SetParamValues("99")
	_ = h.Complete(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTodoHandler_Delete_Success(t *testing.T) {
	stub := &stubTodoService{
		deleteFn: func(ctx context.Context, userID, todoID int64) error {
			if userID != 7 || todoID != 5 {
				t.Fatalf("unexpected args: %d %d", userID, todoID)
			}
			return nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec, _ := newTodoTestContext(t, http.MethodDelete, "/api/todos/5", "", true)
	c.SetParamNames("id")
	c.SetParamValues("5")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestTodoHandler_Delete_BadID(t *testing.T) {
	stub := &stubTodoService{
		deleteFn: func(ctx context.Context, userID, todoID int64) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewTodoHandler(stub)

	c, rec, e := newTodoTestContext(t, http.MethodDelete, "/api/todos/abc", "", true)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if err := h.Delete(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
