package repository

import (
	"context"

	"retailhive/internal/domain/entity"
)

// UserRepository defines user collection operations.
type UserRepository interface {
	// Create persists a new user and returns its generated id.
	Create(ctx context.Context, user *entity.User) (string, error)

	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindAll retrieves the full user collection as an unordered snapshot.
	FindAll(ctx context.Context) ([]entity.User, error)

	// Update replaces the stored user document.
	Update(ctx context.Context, user *entity.User) error

	// UpdateFavorites rewrites only the favorites set of a user.
	UpdateFavorites(ctx context.Context, userID string, favorites []string) error
}
