// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"retailhive/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrShopNotFound is returned when a shop is not found.
	ErrShopNotFound = errors.New("shop not found")
	// ErrOfferNotFound is returned when an offer is not found.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrFloorNotFound is returned when a floor is not found.
	ErrFloorNotFound = errors.New("floor not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
)

// ShopRepository defines shop collection operations.
type ShopRepository interface {
	// Create persists a new shop and returns its generated id.
	Create(ctx context.Context, shop *entity.Shop) (string, error)

	// FindByID retrieves a shop by id.
	FindByID(ctx context.Context, id string) (*entity.Shop, error)

	// FindAll retrieves the full shop collection as an unordered snapshot.
	FindAll(ctx context.Context) ([]entity.Shop, error)

	// Update replaces the stored shop document.
	Update(ctx context.Context, shop *entity.Shop) error

	// Delete removes a shop by id. Offers referencing the shop are left in
	// place; their shop resolves to a placeholder at join time.
	Delete(ctx context.Context, id string) error
}
