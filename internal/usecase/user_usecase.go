package usecase

import (
	"context"

	"retailhive/internal/domain/entity"
)

// UserUsecase defines profile and favorites use cases.
type UserUsecase interface {
	// GetUser retrieves a user profile.
	GetUser(ctx context.Context, id string) (*entity.User, error)

	// UpdateProfile replaces a stored user profile, preserving favorites.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// ToggleFavorite flips the membership of itemID (a shop or offer id)
	// in the user's favorites set. Returns true when the item was added,
	// false when it was removed.
	ToggleFavorite(ctx context.Context, userID, itemID string) (bool, error)

	// FavoriteOffers resolves the user's favorited offer ids into offers.
	// Favorited shop ids and ids of since-deleted offers are skipped.
	FavoriteOffers(ctx context.Context, userID string) ([]entity.Offer, error)
}
