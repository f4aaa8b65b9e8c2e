package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-api/internal/core/domain"
	"github.com/taskhive/task-api/internal/core/ports"
)

type stubTaskService struct {
	createFn   func(ctx context.Context, ownerID string, input ports.CreateTaskInput) (*domain.Task, error)
	listFn     func(ctx context.Context, ownerID string) ([]*domain.Task, error)
	searchFn   func(ctx context.Context, ownerID, query string) ([]*domain.Task, error)
	updateFn   func(ctx context.Context, ownerID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error)
	completeFn func(ctx context.Context, ownerID, taskID string) (*domain.Task, error)
	deleteFn   func(ctx context.Context, ownerID, taskID string) error
}

func (s *stubTaskService) Create(ctx context.Context, ownerID string, input ports.CreateTaskInput) (*domain.Task, error) {
	return s.createFn(ctx, ownerID, input)
}

func (s *stubTaskService) List(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubTaskService) Search(ctx context.Context, ownerID, query string) ([]*domain.Task, error) {
	return s.searchFn(ctx, ownerID, query)
}

func (s *stubTaskService) Update(ctx context.Context, ownerID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error) {
	return s.updateFn(ctx, ownerID, taskID, input)
}

func (s *stubTaskService) Complete(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
	return s.completeFn(ctx, ownerID, taskID)
}

func (s *stubTaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	return s.deleteFn(ctx, ownerID, taskID)
}

// newTaskContext builds an Echo context with the identity the auth gate
// would have attached.
func newTaskContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{ID: "alice", Username: "alice"})
	return c, rec
}

func TestTaskHandler_Create(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreateTaskInput) (*domain.Task, error) {
			if ownerID != "alice" {
				t.Fatalf("expected owner alice, got %s", ownerID)
			}
			if input.Title != "Write spec" || input.Priority != "High" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Task{ID: "t1", Title: input.Title, Priority: domain.PriorityHigh, UserID: ownerID}, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTaskContext(t, http.MethodPost, "/api/tasks", `{"title":"Write spec","priority":"High"}`)
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
	if resp["title"] != "Write spec" || resp["isCompleted"] != false || resp["user"] != "alice" {
		t.Fatalf("unexpected task payload: %+v", resp)
	}
}

func TestTaskHandler_Create_MissingTitle(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreateTaskInput) (*domain.Task, error) {
			t.Fatalf("store must not be reached on validation failure")
			return nil, nil
		},
	}
	h := NewTaskHandler(stub)

	c, _ := newTaskContext(t, http.MethodPost, "/api/tasks", `{"priority":"High"}`)
	err := h.Create(c)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "title" {
		t.Fatalf("unexpected field errors: %+v", ve.Fields)
	}
}

func TestTaskHandler_Create_BadPriority(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreateTaskInput) (*domain.Task, error) {
			t.Fatalf("store must not be reached on validation failure")
			return nil, nil
		},
	}
	h := NewTaskHandler(stub)

	c, _ := newTaskContext(t, http.MethodPost, "/api/tasks", `{"title":"x","priority":"Urgent"}`)
	err := h.Create(c)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestTaskHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubTaskService{
		listFn: func(ctx context.Context, ownerID string) ([]*domain.Task, error) {
			return nil, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTaskContext(t, http.MethodGet, "/api/tasks", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestTaskHandler_Search_PassesQuery(t *testing.T) {
	stub := &stubTaskService{
		searchFn: func(ctx context.Context, ownerID, query string) ([]*domain.Task, error) {
			if query != "milk" {
				t.Fatalf("expected query milk, got %q", query)
			}
			return []*domain.Task{{ID: "t1", Title: "Buy Milk", UserID: ownerID}}, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTaskContext(t, http.MethodGet, "/api/tasks/search?query=milk", "")
	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["title"] != "Buy Milk" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestTaskHandler_Update_PresenceOfKey(t *testing.T) {
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, ownerID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error) {
			if taskID != "t1" {
				t.Fatalf("expected task t1, got %s", taskID)
			}
			if input.Priority == nil || *input.Priority != "Low" {
				t.Fatalf("expected priority Low, got %v", input.Priority)
			}
			// Absent keys must stay nil so stored values survive.
			if input.Title != nil || input.Description != nil || input.Category != nil || input.IsCompleted != nil {
				t.Fatalf("absent keys decoded as present: %+v", input)
			}
			return &domain.Task{ID: taskID, Title: "Buy Milk", Priority: domain.PriorityLow, UserID: ownerID}, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTaskContext(t, http.MethodPut, "/api/tasks/t1", `{"priority":"Low"}`)
	c.SetParamNames("id")
	c.SetParamValues("t1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTaskHandler_Update_EmptyTitleRejected(t *testing.T) {
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, ownerID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error) {
			t.Fatalf("store must not be reached on validation failure")
			return nil, nil
		},
	}
	h := NewTaskHandler(stub)

	c, _ := newTaskContext(t, http.MethodPut, "/api/tasks/t1", `{"title":""}`)
	c.SetParamNames("id")
	c.SetParamValues("t1")
	err := h.Update(c)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for empty title, got %v", err)
	}
}

func TestTaskHandler_Update_NotOwner(t *testing.T) {
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, ownerID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error) {
			return nil, domain.ErrNotTaskOwner
		},
	}
	h := NewTaskHandler(stub)

	c, _ := newTaskContext(t, http.MethodPut, "/api/tasks/t1", `{"priority":"Low"}`)
	c.SetParamNames("id")
	c.SetParamValues("t1")
	if err := h.Update(c); !errors.Is(err, domain.ErrNotTaskOwner) {
		t.Fatalf("expected ErrNotTaskOwner to propagate, got %v", err)
	}
}

func TestTaskHandler_Complete(t *testing.T) {
	stub := &stubTaskService{
		completeFn: func(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
			return &domain.Task{ID: taskID, Title: "Buy Milk", IsCompleted: true, UserID: ownerID}, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTaskContext(t, http.MethodPatch, "/api/tasks/t1/complete", "")
	c.SetParamNames("id")
	c.SetParamValues("t1")
	if err := h.Complete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["isCompleted"] != true {
		t.Fatalf("expected isCompleted=true, got %v", resp["isCompleted"])
	}
}

func TestTaskHandler_Delete(t *testing.T) {
	stub := &stubTaskService{
		deleteFn: func(ctx context.Context, ownerID, taskID string) error {
			if ownerID != "alice" || taskID != "t1" {
				t.Fatalf("unexpected args: %s %s", ownerID, taskID)
			}
			return nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTaskContext(t, http.MethodDelete, "/api/tasks/t1", "")
	c.SetParamNames("id")
	c.SetParamValues("t1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Task deleted successfully" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestTaskHandler_Delete_NotFound(t *testing.T) {
	stub := &stubTaskService{
		deleteFn: func(ctx context.Context, ownerID, taskID string) error {
			return domain.ErrTaskNotFound
		},
	}
	h := NewTaskHandler(stub)

	c, _ := newTaskContext(t, http.MethodDelete, "/api/tasks/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Delete(c); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound to propagate, got %v", err)
	}
}
