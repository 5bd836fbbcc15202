package impl

import (
	"context"
	"testing"

	"retailhive/internal/domain/entity"
	"retailhive/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestShopService(
	shopRepo *fakeShopRepo,
	offerRepo *fakeOfferRepo,
	categoryRepo *fakeCategoryRepo,
	floorRepo *fakeFloorRepo,
) usecase.ShopUsecase {
	return NewShopService(
		shopRepo, offerRepo, categoryRepo, floorRepo,
		&fakeQRCodeService{png: []byte{0x89, 'P', 'N', 'G'}},
		newDiscardLogger(),
	)
}

func TestShopService_GetShop_ResolvedDetails(t *testing.T) {
	shopRepo := &fakeShopRepo{shops: []entity.Shop{
		{ID: "s-1", ShopName: "Bhavani Stores", CategoryID: "c-1", FloorID: "f-9"},
	}}
	offerRepo := &fakeOfferRepo{offers: []entity.Offer{
		{ID: "o-1", Title: "Rice", ShopID: "s-1"},
		{ID: "o-2", Title: "Nails", ShopID: "s-2"},
	}}
	categoryRepo := &fakeCategoryRepo{categories: []entity.Category{{ID: "c-1", Name: "Groceries"}}}

	svc := createTestShopService(shopRepo, offerRepo, categoryRepo, &fakeFloorRepo{})

	details, err := svc.GetShop(context.Background(), "s-1")
	require.NoError(t, err)

	assert.Equal(t, "Groceries", details.CategoryName)
	assert.Equal(t, "Unknown Floor", details.FloorName)
	require.Len(t, details.Offers, 1)
	assert.Equal(t, "o-1", details.Offers[0].ID)
}

func TestShopService_GetShop_NotFound(t *testing.T) {
	svc := createTestShopService(&fakeShopRepo{}, &fakeOfferRepo{}, &fakeCategoryRepo{}, &fakeFloorRepo{})

	_, err := svc.GetShop(context.Background(), "ghost")
	assert.Error(t, err)
}

func TestShopService_ListShops_Filtered(t *testing.T) {
	shopRepo := &fakeShopRepo{shops: []entity.Shop{
		{ID: "s-1", ShopName: "Bhavani Stores", CategoryID: "c-1"},
		{ID: "s-2", ShopName: "Anand Traders", CategoryID: "c-2"},
	}}
	offerRepo := &fakeOfferRepo{offers: []entity.Offer{
		{ID: "o-1", Title: "Rice", Discount: "30", ShopID: "s-1"},
	}}

	svc := createTestShopService(shopRepo, offerRepo, &fakeCategoryRepo{}, &fakeFloorRepo{})

	filtered, err := svc.ListShops(context.Background(), usecase.ShopFilter{MinDiscount: intPtr(20)})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "s-1", filtered[0].ID)

	all, err := svc.ListShops(context.Background(), usecase.ShopFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestShopService_CreateShop_Validation(t *testing.T) {
	shopRepo := &fakeShopRepo{}
	svc := createTestShopService(shopRepo, &fakeOfferRepo{}, &fakeCategoryRepo{}, &fakeFloorRepo{})

	id, err := svc.CreateShop(context.Background(), &entity.Shop{ShopName: "Corner"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = svc.CreateShop(context.Background(), &entity.Shop{})
	assert.Error(t, err)
}

func TestShopService_ShopQR(t *testing.T) {
	shopRepo := &fakeShopRepo{shops: []entity.Shop{{ID: "s-1", ShopName: "Corner"}}}
	svc := createTestShopService(shopRepo, &fakeOfferRepo{}, &fakeCategoryRepo{}, &fakeFloorRepo{})

	png, err := svc.ShopQR(context.Background(), "s-1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = svc.ShopQR(context.Background(), "ghost")
	assert.Error(t, err)
}
