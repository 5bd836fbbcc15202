package usecase

import (
	"context"

	"retailhive/internal/domain/entity"
)

// RecommendationUsecase defines the personalized and trending ranking use
// cases. A limit of 0 or below falls back to the configured default.
type RecommendationUsecase interface {
	// Personalized scores every offer for the user and returns the best
	// `limit` entries, highest score first, input order preserved on ties.
	Personalized(ctx context.Context, userID string, limit int) ([]entity.RecommendedOffer, error)

	// Trending ranks offers by the composite of view count, favorite count
	// and average rating.
	Trending(ctx context.Context, limit int) ([]entity.TrendingOffer, error)
}
