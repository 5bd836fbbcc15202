package usecase

import (
	"context"

	"retailhive/internal/domain/entity"
	"retailhive/internal/domain/repository"
)

// ReviewUsecase defines review management for shops and offers.
type ReviewUsecase interface {
	// AddShopReview persists a review of a shop.
	AddShopReview(ctx context.Context, review *entity.Review) (string, error)

	// AddOfferReview persists a review of an offer.
	AddOfferReview(ctx context.Context, review *entity.Review) (string, error)

	// ListShopReviews retrieves all reviews of one shop.
	ListShopReviews(ctx context.Context, shopID string) ([]entity.Review, error)

	// ListOfferReviews retrieves all reviews of one offer.
	ListOfferReviews(ctx context.Context, offerID string) ([]entity.Review, error)

	// UpdateReview replaces a stored review in the given scope.
	UpdateReview(ctx context.Context, scope repository.ReviewScope, review *entity.Review) error

	// DeleteReview removes a review from the given scope.
	DeleteReview(ctx context.Context, scope repository.ReviewScope, id string) error
}
