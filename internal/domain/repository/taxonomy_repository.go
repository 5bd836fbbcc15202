package repository

import (
	"context"

	"retailhive/internal/domain/entity"
)

// CategoryRepository defines category collection operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) (string, error)
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	FindAll(ctx context.Context) ([]entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category. There is no cascading update: shops keep
	// their dangling categoryId and resolve to "Uncategorized" at join time.
	Delete(ctx context.Context, id string) error
}

// FloorRepository defines floor collection operations.
type FloorRepository interface {
	Create(ctx context.Context, floor *entity.Floor) (string, error)
	FindByID(ctx context.Context, id string) (*entity.Floor, error)
	FindAll(ctx context.Context) ([]entity.Floor, error)
	Update(ctx context.Context, floor *entity.Floor) error
	Delete(ctx context.Context, id string) error
}
