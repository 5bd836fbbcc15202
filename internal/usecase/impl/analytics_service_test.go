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

func createTestAnalyticsService(
	shopRepo *fakeShopRepo,
	offerRepo *fakeOfferRepo,
	userRepo *fakeUserRepo,
	reviewRepo *fakeReviewRepo,
	categoryRepo *fakeCategoryRepo,
	floorRepo *fakeFloorRepo,
	auditRepo *fakeAuditLogRepo,
) usecase.AnalyticsUsecase {
	return NewAnalyticsService(
		shopRepo, offerRepo, userRepo, reviewRepo, categoryRepo, floorRepo, auditRepo,
		newDiscardLogger(),
	)
}

func TestAnalyticsService_Summary(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{categories: []entity.Category{
		{ID: "c-1", Name: "Groceries"},
		{ID: "c-2", Name: "Hardware"},
	}}
	floorRepo := &fakeFloorRepo{floors: []entity.Floor{
		{ID: "f-1", Name: "Ground Floor"},
	}}
	shopRepo := &fakeShopRepo{shops: []entity.Shop{
		{ID: "s-1", ShopName: "A", CategoryID: "c-1", FloorID: "f-1"},
		{ID: "s-2", ShopName: "B", CategoryID: "c-1", FloorID: "f-1"},
		{ID: "s-3", ShopName: "C", CategoryID: "c-2"},
		{ID: "s-4", ShopName: "D", CategoryID: "c-gone"}, // not counted
		{ID: "s-5", ShopName: "E"},                       // not counted
	}}
	offerRepo := &fakeOfferRepo{offers: []entity.Offer{
		{ID: "o-1", Title: "X", ShopID: "s-1"},
	}}
	userRepo := &fakeUserRepo{users: []entity.User{{ID: "u-1"}, {ID: "u-2"}}}
	reviewRepo := &fakeReviewRepo{
		shopReviews:  []entity.Review{{ID: "r-1", ShopID: "s-1", UserID: "u-1", Rating: 5}},
		offerReviews: []entity.Review{{ID: "r-2", OfferID: "o-1", UserID: "u-2", Rating: 2}},
	}

	svc := createTestAnalyticsService(shopRepo, offerRepo, userRepo, reviewRepo, categoryRepo, floorRepo, &fakeAuditLogRepo{})

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalShops)
	assert.Equal(t, 1, summary.TotalOffers)
	assert.Equal(t, 2, summary.TotalUsers)
	assert.Equal(t, 2, summary.TotalReviews)
	assert.InDelta(t, 3.5, summary.AverageRating, 1e-9)

	// Dangling and absent references drop out instead of forming an
	// "Unknown" bucket.
	require.Len(t, summary.TopCategories, 2)
	assert.Equal(t, entity.LabelCount{Label: "Groceries", Count: 2}, summary.TopCategories[0])
	assert.Equal(t, entity.LabelCount{Label: "Hardware", Count: 1}, summary.TopCategories[1])

	require.Len(t, summary.TopFloors, 1)
	assert.Equal(t, entity.LabelCount{Label: "Ground Floor", Count: 2}, summary.TopFloors[0])
}

func TestAnalyticsService_Summary_EmptyCatalog(t *testing.T) {
	svc := createTestAnalyticsService(
		&fakeShopRepo{}, &fakeOfferRepo{}, &fakeUserRepo{}, &fakeReviewRepo{},
		&fakeCategoryRepo{}, &fakeFloorRepo{}, &fakeAuditLogRepo{},
	)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalShops)
	assert.Zero(t, summary.AverageRating)
	assert.Empty(t, summary.TopCategories)
	assert.Empty(t, summary.TopFloors)
}

func TestAnalyticsService_Summary_TopFiveBound(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{}
	shopRepo := &fakeShopRepo{}
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("c-%d", i)
		categoryRepo.categories = append(categoryRepo.categories, entity.Category{
			ID: id, Name: fmt.Sprintf("Category %d", i),
		})
		// One shop per category, plus extras for the first two so the
		// ranking has a defined head.
		shopRepo.shops = append(shopRepo.shops, entity.Shop{
			ID: fmt.Sprintf("s-%d", i), ShopName: "X", CategoryID: id,
		})
	}
	shopRepo.shops = append(shopRepo.shops,
		entity.Shop{ID: "s-x1", ShopName: "X", CategoryID: "c-1"},
		entity.Shop{ID: "s-x2", ShopName: "X", CategoryID: "c-1"},
		entity.Shop{ID: "s-x3", ShopName: "X", CategoryID: "c-2"},
	)

	svc := createTestAnalyticsService(shopRepo, &fakeOfferRepo{}, &fakeUserRepo{}, &fakeReviewRepo{}, categoryRepo, &fakeFloorRepo{}, &fakeAuditLogRepo{})

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.TopCategories, 5)
	assert.Equal(t, "Category 1", summary.TopCategories[0].Label)
	assert.Equal(t, 3, summary.TopCategories[0].Count)
	assert.Equal(t, "Category 2", summary.TopCategories[1].Label)

	// Ties keep first-encountered order.
	assert.Equal(t, "Category 0", summary.TopCategories[2].Label)
	assert.Equal(t, "Category 3", summary.TopCategories[3].Label)
	assert.Equal(t, "Category 4", summary.TopCategories[4].Label)
}

func TestAnalyticsService_RecentActivity(t *testing.T) {
	auditRepo := &fakeAuditLogRepo{entries: []entity.AuditEntry{
		{ID: "a-1", Action: "createShop"},
		{ID: "a-2", Action: "createOffer"},
		{ID: "a-3", Action: "deleteShop"},
	}}

	svc := createTestAnalyticsService(
		&fakeShopRepo{}, &fakeOfferRepo{}, &fakeUserRepo{}, &fakeReviewRepo{},
		&fakeCategoryRepo{}, &fakeFloorRepo{}, auditRepo,
	)

	entries, err := svc.RecentActivity(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "deleteShop", entries[0].Action)
	assert.Equal(t, "createOffer", entries[1].Action)
}
