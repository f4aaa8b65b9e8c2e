package ports

import (
	"context"
	"time"

	"github.com/taskhive/task-api/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a new task. The owner is
// never part of the input; it is always the authenticated caller.
type CreateTaskInput struct {
	Title       string
	Description string
	Category    string
	Priority    string // empty = Medium
	DueDate     *time.Time
}

// UpdateTaskInput carries a partial update. Nil fields were absent from the
// payload and leave the stored value untouched; non-nil fields overwrite,
// including overwriting with the zero value (presence-of-key semantics).
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *string
	DueDate     *time.Time
	IsCompleted *bool
}

// TaskService defines use-case operations for tasks. Every operation that
// addresses an existing task enforces the ownership policy: the task must
// exist (domain.ErrTaskNotFound) and belong to ownerID (domain.ErrNotTaskOwner).
type TaskService interface {
	Create(ctx context.Context, ownerID string, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, ownerID string) ([]*domain.Task, error)
	Search(ctx context.Context, ownerID, query string) ([]*domain.Task, error)
	Update(ctx context.Context, ownerID, taskID string, input UpdateTaskInput) (*domain.Task, error)
	Complete(ctx context.Context, ownerID, taskID string) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
}
