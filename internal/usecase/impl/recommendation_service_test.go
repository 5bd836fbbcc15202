package impl

import (
	"context"
	"fmt"
	"testing"

	"retailhive/internal/domain/entity"
	"retailhive/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRecommendationService(
	offerRepo *fakeOfferRepo,
	userRepo *fakeUserRepo,
	reviewRepo *fakeReviewRepo,
	engagementRepo *fakeEngagementRepo,
) usecase.RecommendationUsecase {
	return NewRecommendationService(
		offerRepo, userRepo, reviewRepo, engagementRepo,
		newTestConfig(10), newDiscardLogger(),
	)
}

func TestRecommendationService_Personalized_WorkedExample(t *testing.T) {
	// Favorited offer with a 4.5 average across 12 reviews: 5 + 2 + 1 = 8.
	offerRepo := &fakeOfferRepo{offers: []entity.Offer{
		{ID: "offer-x", Title: "Half price rice", ShopID: "shop-1"},
	}}
	userRepo := &fakeUserRepo{users: []entity.User{
		{ID: "user-1", Name: "Asha", Favorites: []string{"offer-x"}},
	}}
	reviewRepo := &fakeReviewRepo{}
	for i := 0; i < 12; i++ {
		rating := 5
		if i%2 == 1 {
			rating = 4
		}
		reviewRepo.offerReviews = append(reviewRepo.offerReviews, entity.Review{
			ID:      fmt.Sprintf("r-%d", i),
			OfferID: "offer-x",
			UserID:  fmt.Sprintf("other-%d", i),
			Rating:  rating,
		})
	}

	service := createTestRecommendationService(offerRepo, userRepo, reviewRepo, newFakeEngagementRepo())

	ranked, err := service.Personalized(context.Background(), "user-1", 10)
	require.NoError(t, err)
	require.Len(t, ranked, 1)

	assert.Equal(t, 8, ranked[0].Score)
	assert.Equal(t, []string{
		"User favorited this offer",
		"High average rating",
		"Popular offer",
	}, ranked[0].Reasons)
}

func TestRecommendationService_Personalized_OwnHighReviewRule(t *testing.T) {
	offerRepo := &fakeOfferRepo{offers: []entity.Offer{
		{ID: "offer-a", Title: "A", ShopID: "shop-1"},
	}}
	userRepo := &fakeUserRepo{users: []entity.User{{ID: "user-1"}}}
	reviewRepo := &fakeReviewRepo{offerReviews: []entity.Review{
		{ID: "r-1", OfferID: "offer-a", UserID: "user-1", Rating: 4},
	}}

	service := createTestRecommendationService(offerRepo, userRepo, reviewRepo, newFakeEngagementRepo())

	ranked, err := service.Personalized(context.Background(), "user-1", 10)
	require.NoError(t, err)
	require.Len(t, ranked, 1)

	// Own 4-star review triggers both the own-review rule and, with a
	// single review averaging 4.0, the high-average rule.
	assert.Equal(t, 5, ranked[0].Score)
	assert.Equal(t, []string{
		"User rated similar offers highly",
		"High average rating",
	}, ranked[0].Reasons)
}

func TestRecommendationService_Personalized_ZeroScoreStillRanked(t *testing.T) {
	offerRepo := &fakeOfferRepo{offers: []entity.Offer{
		{ID: "offer-a", Title: "A", ShopID: "shop-1"},
		{ID: "offer-b", Title: "B", ShopID: "shop-1"},
	}}
	userRepo := &fakeUserRepo{users: []entity.User{
		{ID: "user-1", Favorites: []string{"offer-b"}},
	}}

	service := createTestRecommendationService(offerRepo, userRepo, &fakeReviewRepo{}, newFakeEngagementRepo())

	ranked, err := service.Personalized(context.Background(), "user-1", 10)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "offer-b", ranked[0].Offer.ID)
	assert.Equal(t, 5, ranked[0].Score)
	assert.Equal(t, "offer-a", ranked[1].Offer.ID)
	assert.Equal(t, 0, ranked[1].Score)
	assert.Empty(t, ranked[1].Reasons)
}

func TestRecommendationService_Personalized_StableOrderOnTies(t *testing.T) {
	offerRepo := &fakeOfferRepo{offers: []entity.Offer{
		{ID: "offer-a", Title: "A", ShopID: "shop-1"},
		{ID: "offer-b", Title: "B", ShopID: "shop-1"},
		{ID: "offer-c", Title: "C", ShopID: "shop-1"},
	}}
	userRepo := &fakeUserRepo{users: []entity.User{{ID: "user-1"}}}

	service := createTestRecommendationService(offerRepo, userRepo, &fakeReviewRepo{}, newFakeEngagementRepo())

	ranked, err := service.Personalized(context.Background(), "user-1", 10)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	// All score 0; catalog order must survive the sort.
	assert.Equal(t, "offer-a", ranked[0].Offer.ID)
	assert.Equal(t, "offer-b", ranked[1].Offer.ID)
	assert.Equal(t, "offer-c", ranked[2].Offer.ID)
}

func TestRecommendationService_Personalized_LimitFallback(t *testing.T) {
	offerRepo := &fakeOfferRepo{}
	for i := 0; i < 15; i++ {
		offerRepo.offers = append(offerRepo.offers, entity.Offer{
			ID: fmt.Sprintf("offer-%d", i), Title: "X", ShopID: "shop-1",
		})
	}
	userRepo := &fakeUserRepo{users: []entity.User{{ID: "user-1"}}}

	service := createTestRecommendationService(offerRepo, userRepo, &fakeReviewRepo{}, newFakeEngagementRepo())

	ranked, err := service.Personalized(context.Background(), "user-1", 0)
	require.NoError(t, err)
	assert.Len(t, ranked, 10)

	ranked, err = service.Personalized(context.Background(), "user-1", 3)
	require.NoError(t, err)
	assert.Len(t, ranked, 3)
}

func TestRecommendationService_Personalized_UserNotFound(t *testing.T) {
	service := createTestRecommendationService(
		&fakeOfferRepo{}, &fakeUserRepo{}, &fakeReviewRepo{}, newFakeEngagementRepo(),
	)

	_, err := service.Personalized(context.Background(), "nobody", 10)
	assert.Error(t, err)
}

func TestRecommendationService_Trending_CompositeScore(t *testing.T) {
	offerRepo := &fakeOfferRepo{offers: []entity.Offer{
		{ID: "offer-a", Title: "A", ShopID: "shop-1"},
		{ID: "offer-b", Title: "B", ShopID: "shop-1"},
	}}
	engagementRepo := newFakeEngagementRepo()
	require.NoError(t, engagementRepo.IncrementViews(context.Background(), "offer-a", 10))
	require.NoError(t, engagementRepo.IncrementFavorites(context.Background(), "offer-a", 5))
	reviewRepo := &fakeReviewRepo{offerReviews: []entity.Review{
		{ID: "r-1", OfferID: "offer-a", UserID: "u-1", Rating: 4},
	}}

	service := createTestRecommendationService(offerRepo, &fakeUserRepo{}, reviewRepo, engagementRepo)

	ranked, err := service.Trending(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	// 0.3*10 + 0.4*5 + 0.3*4 = 6.2
	assert.Equal(t, "offer-a", ranked[0].Offer.ID)
	assert.InDelta(t, 6.2, ranked[0].Score, 1e-9)
	assert.Equal(t, int64(10), ranked[0].ViewCount)
	assert.Equal(t, int64(5), ranked[0].FavoriteCount)

	// No counters, no reviews: everything zero.
	assert.Equal(t, "offer-b", ranked[1].Offer.ID)
	assert.Zero(t, ranked[1].Score)
	assert.Zero(t, ranked[1].AverageRating)
}

func TestRecommendationService_Trending_Truncation(t *testing.T) {
	offerRepo := &fakeOfferRepo{}
	for i := 0; i < 12; i++ {
		offerRepo.offers = append(offerRepo.offers, entity.Offer{
			ID: fmt.Sprintf("offer-%d", i), Title: "X", ShopID: "shop-1",
		})
	}

	service := createTestRecommendationService(offerRepo, &fakeUserRepo{}, &fakeReviewRepo{}, newFakeEngagementRepo())

	ranked, err := service.Trending(context.Background(), 4)
	require.NoError(t, err)
	assert.Len(t, ranked, 4)

	ranked, err = service.Trending(context.Background(), -1)
	require.NoError(t, err)
	assert.Len(t, ranked, 10)
}
