package impl

import (
	"testing"

	"retailhive/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShopDetails_ResolvesLabelsAndOffers(t *testing.T) {
	shops := []entity.Shop{
		{ID: "s-1", ShopName: "Bhavani Stores", CategoryID: "c-1", FloorID: "f-1"},
		{ID: "s-2", ShopName: "Anand Traders", CategoryID: "c-9", FloorID: ""},
		{ID: "s-3", ShopName: "Meena Fabrics"},
	}
	offers := []entity.Offer{
		{ID: "o-1", Title: "Rice", ShopID: "s-1"},
		{ID: "o-2", Title: "Oil", ShopID: "s-1"},
		{ID: "o-3", Title: "Nails", ShopID: "s-9"},
	}
	categories := []entity.Category{{ID: "c-1", Name: "Groceries"}}
	floors := []entity.Floor{{ID: "f-1", Name: "Ground Floor"}}

	details := buildShopDetails(shops, offers, categories, floors)
	require.Len(t, details, 3)

	assert.Equal(t, "Groceries", details[0].CategoryName)
	assert.Equal(t, "Ground Floor", details[0].FloorName)
	require.Len(t, details[0].Offers, 2)
	assert.Equal(t, "o-1", details[0].Offers[0].ID)

	// Dangling category id and empty floor id resolve to placeholders.
	assert.Equal(t, "Uncategorized", details[1].CategoryName)
	assert.Equal(t, "Unknown Floor", details[1].FloorName)
	assert.NotNil(t, details[1].Offers)
	assert.Empty(t, details[1].Offers)

	assert.Equal(t, "Uncategorized", details[2].CategoryName)
	assert.Equal(t, "Unknown Floor", details[2].FloorName)
}

func TestBuildOfferDetails_ResolvesShop(t *testing.T) {
	offers := []entity.Offer{
		{ID: "o-1", Title: "Rice", ShopID: "s-1"},
		{ID: "o-2", Title: "Orphan", ShopID: "s-9"},
	}
	shops := []entity.Shop{{ID: "s-1", ShopName: "Bhavani Stores", Address: "Stall 4"}}

	details := buildOfferDetails(offers, shops)
	require.Len(t, details, 2)

	assert.Equal(t, "Bhavani Stores", details[0].ShopName)
	assert.Equal(t, "Stall 4", details[0].ShopAddress)

	assert.Equal(t, "Unknown Shop", details[1].ShopName)
	assert.Equal(t, "Unknown Address", details[1].ShopAddress)
}
