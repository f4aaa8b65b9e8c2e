package ports

import (
	"context"

	"github.com/taskhive/task-api/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Ownership checks
// belong to the service layer; the repository answers by id or owner only.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// FindByID retrieves a task regardless of owner. Returns
	// domain.ErrTaskNotFound when no document matches.
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	// SearchByTitle returns the owner's tasks whose title contains query,
	// matched case-insensitively.
	SearchByTitle(ctx context.Context, ownerID, query string) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
}
