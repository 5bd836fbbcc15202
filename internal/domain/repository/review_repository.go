package repository

import (
	"context"

	"retailhive/internal/domain/entity"
)

// ReviewScope selects which review collection an operation targets. Shop and
// offer reviews live in separate collections with the same record shape.
type ReviewScope string

const (
	// ReviewScopeShop targets the shopReviews collection.
	ReviewScopeShop ReviewScope = "shop"
	// ReviewScopeOffer targets the offerReviews collection.
	ReviewScopeOffer ReviewScope = "offer"
)

// ReviewRepository defines review collection operations. ItemID means the
// shop id for the shop scope and the offer id for the offer scope.
type ReviewRepository interface {
	// Create persists a new review and returns its generated id.
	Create(ctx context.Context, scope ReviewScope, review *entity.Review) (string, error)

	// FindAll retrieves every review in the scoped collection.
	FindAll(ctx context.Context, scope ReviewScope) ([]entity.Review, error)

	// FindForItem retrieves all reviews of one shop or offer.
	FindForItem(ctx context.Context, scope ReviewScope, itemID string) ([]entity.Review, error)

	// FindByUser retrieves all reviews a user has written in the scope.
	FindByUser(ctx context.Context, scope ReviewScope, userID string) ([]entity.Review, error)

	// Update replaces the stored review document.
	Update(ctx context.Context, scope ReviewScope, review *entity.Review) error

	// Delete removes a review by id.
	Delete(ctx context.Context, scope ReviewScope, id string) error
}
