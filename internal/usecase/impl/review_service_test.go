package impl

import (
	"context"
	"testing"
	"time"

	"retailhive/internal/domain/entity"
	"retailhive/internal/domain/repository"
	"retailhive/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestReviewService(
	reviewRepo *fakeReviewRepo,
	shopRepo *fakeShopRepo,
	offerRepo *fakeOfferRepo,
) usecase.ReviewUsecase {
	svc := NewReviewService(reviewRepo, shopRepo, offerRepo, newDiscardLogger())
	svc.(*reviewService).now = func() time.Time { return fixedNow() }

	return svc
}

func TestReviewService_AddShopReview(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	shopRepo := &fakeShopRepo{shops: []entity.Shop{{ID: "s-1", ShopName: "Corner"}}}

	svc := createTestReviewService(reviewRepo, shopRepo, &fakeOfferRepo{})

	id, err := svc.AddShopReview(context.Background(), &entity.Review{
		ShopID: "s-1", UserID: "u-1", UserName: "Asha", Rating: 4, Comment: "good prices",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, reviewRepo.shopReviews, 1)
	assert.Equal(t, "2025-06-15T12:00:00Z", reviewRepo.shopReviews[0].CreatedAt)
}

func TestReviewService_AddShopReview_RejectsBadInput(t *testing.T) {
	shopRepo := &fakeShopRepo{shops: []entity.Shop{{ID: "s-1", ShopName: "Corner"}}}
	svc := createTestReviewService(&fakeReviewRepo{}, shopRepo, &fakeOfferRepo{})

	tests := []struct {
		name   string
		review entity.Review
	}{
		{name: "rating too low", review: entity.Review{ShopID: "s-1", UserID: "u-1", Rating: 0}},
		{name: "rating too high", review: entity.Review{ShopID: "s-1", UserID: "u-1", Rating: 6}},
		{name: "missing user", review: entity.Review{ShopID: "s-1", Rating: 3}},
		{name: "missing shop", review: entity.Review{UserID: "u-1", Rating: 3}},
		{name: "unknown shop", review: entity.Review{ShopID: "ghost", UserID: "u-1", Rating: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review := tt.review
			_, err := svc.AddShopReview(context.Background(), &review)
			assert.Error(t, err)
		})
	}
}

func TestReviewService_AddOfferReview(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	offerRepo := &fakeOfferRepo{offers: []entity.Offer{{ID: "o-1", Title: "Rice", ShopID: "s-1"}}}

	svc := createTestReviewService(reviewRepo, &fakeShopRepo{}, offerRepo)

	_, err := svc.AddOfferReview(context.Background(), &entity.Review{
		OfferID: "o-1", UserID: "u-1", Rating: 5,
	})
	require.NoError(t, err)
	assert.Len(t, reviewRepo.offerReviews, 1)
	assert.Empty(t, reviewRepo.shopReviews)

	_, err = svc.AddOfferReview(context.Background(), &entity.Review{
		OfferID: "o-gone", UserID: "u-1", Rating: 5,
	})
	assert.Error(t, err)
}

func TestReviewService_ListAndDelete(t *testing.T) {
	reviewRepo := &fakeReviewRepo{offerReviews: []entity.Review{
		{ID: "r-1", OfferID: "o-1", UserID: "u-1", Rating: 5},
		{ID: "r-2", OfferID: "o-2", UserID: "u-1", Rating: 3},
	}}

	svc := createTestReviewService(reviewRepo, &fakeShopRepo{}, &fakeOfferRepo{})

	reviews, err := svc.ListOfferReviews(context.Background(), "o-1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "r-1", reviews[0].ID)

	require.NoError(t, svc.DeleteReview(context.Background(), repository.ReviewScopeOffer, "r-1"))
	assert.Len(t, reviewRepo.offerReviews, 1)

	assert.Error(t, svc.DeleteReview(context.Background(), repository.ReviewScopeOffer, "r-1"))
}

func TestReviewService_UpdateReview_KeepsProvidedTimestamp(t *testing.T) {
	reviewRepo := &fakeReviewRepo{shopReviews: []entity.Review{
		{ID: "r-1", ShopID: "s-1", UserID: "u-1", Rating: 2, CreatedAt: "2025-01-01T00:00:00Z"},
	}}

	svc := createTestReviewService(reviewRepo, &fakeShopRepo{}, &fakeOfferRepo{})

	err := svc.UpdateReview(context.Background(), repository.ReviewScopeShop, &entity.Review{
		ID: "r-1", ShopID: "s-1", UserID: "u-1", Rating: 4, CreatedAt: "2025-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, reviewRepo.shopReviews[0].Rating)
	assert.Equal(t, "2025-01-01T00:00:00Z", reviewRepo.shopReviews[0].CreatedAt)
}
