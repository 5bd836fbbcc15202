package repository

import (
	"context"

	"retailhive/internal/domain/entity"
)

// EngagementRepository persists per-offer view and favorite counters.
// Counters are written by the engagement worker and read by trending
// scoring; a missing counter document reads as zeroes, never an error.
type EngagementRepository interface {
	// FindByOffer retrieves the counter for one offer, zero-valued when the
	// offer has no recorded engagement yet.
	FindByOffer(ctx context.Context, offerID string) (*entity.EngagementCounter, error)

	// FindAll retrieves every counter document.
	FindAll(ctx context.Context) ([]entity.EngagementCounter, error)

	// IncrementViews adds delta to the view counter of an offer, creating
	// the counter document when absent.
	IncrementViews(ctx context.Context, offerID string, delta int64) error

	// IncrementFavorites adds delta to the favorite counter of an offer,
	// creating the counter document when absent. Delta may be negative
	// (favorite removed).
	IncrementFavorites(ctx context.Context, offerID string, delta int64) error
}
