package ports

import (
	"context"

	"github.com/taskhive/task-api/internal/core/domain"
)

// AuthRepository defines the interface for user identity persistence.
type AuthRepository interface {
	// Create persists a new user. Returns domain.ErrUserExists when the
	// username is already taken (uniqueness is enforced at write time).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
