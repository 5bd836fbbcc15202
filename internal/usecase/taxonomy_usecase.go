package usecase

import (
	"context"

	"retailhive/internal/domain/entity"
)

// TaxonomyUsecase defines category and floor management use cases.
// Deleting a category or floor never cascades to shops; dangling references
// resolve to placeholder labels at join time.
type TaxonomyUsecase interface {
	CreateCategory(ctx context.Context, category *entity.Category) (string, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	UpdateCategory(ctx context.Context, category *entity.Category) error
	DeleteCategory(ctx context.Context, id string) error

	CreateFloor(ctx context.Context, floor *entity.Floor) (string, error)
	ListFloors(ctx context.Context) ([]entity.Floor, error)
	UpdateFloor(ctx context.Context, floor *entity.Floor) error
	DeleteFloor(ctx context.Context, id string) error
}
