package repository

import (
	"context"

	"retailhive/internal/domain/entity"
)

// OfferRepository defines offer collection operations, including the
// archive target collection for expired offers.
type OfferRepository interface {
	// Create persists a new offer and returns its generated id.
	Create(ctx context.Context, offer *entity.Offer) (string, error)

	// FindByID retrieves an offer by id.
	FindByID(ctx context.Context, id string) (*entity.Offer, error)

	// FindAll retrieves the full offer collection as an unordered snapshot.
	FindAll(ctx context.Context) ([]entity.Offer, error)

	// FindByShop retrieves all offers belonging to a shop.
	FindByShop(ctx context.Context, shopID string) ([]entity.Offer, error)

	// Update replaces the stored offer document.
	Update(ctx context.Context, offer *entity.Offer) error

	// UpdateValidUntil rewrites only the validity field of an offer.
	UpdateValidUntil(ctx context.Context, id, validUntil string) error

	// Delete removes an offer by id.
	Delete(ctx context.Context, id string) error

	// InsertArchived copies an offer into the archive collection and
	// returns the archived document id. The source offer is not touched;
	// callers delete it separately (copy-then-delete is non-atomic).
	InsertArchived(ctx context.Context, offer *entity.Offer) (string, error)
}
