package impl

import (
	"testing"

	"retailhive/internal/domain/entity"
	"retailhive/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func detailsFixture() []entity.ShopDetails {
	return []entity.ShopDetails{
		{
			Shop:         entity.Shop{ID: "s-1", ShopName: "Bhavani Stores", OwnerName: "Bhavani", Address: "Stall 4", CategoryID: "c-1", FloorID: "f-1"},
			CategoryName: "Groceries",
			FloorName:    "Ground Floor",
			Offers: []entity.Offer{
				{ID: "o-1", Discount: "10%", ShopID: "s-1"},
				{ID: "o-2", Discount: "50%", ShopID: "s-1"},
			},
		},
		{
			Shop:         entity.Shop{ID: "s-2", ShopName: "Anand Traders", OwnerName: "Anand", Address: "Stall 9", CategoryID: "c-2", FloorID: "f-1"},
			CategoryName: "Hardware",
			FloorName:    "Ground Floor",
			Offers: []entity.Offer{
				{ID: "o-3", Discount: "10", ShopID: "s-2"},
				{ID: "o-4", Discount: "15", ShopID: "s-2"},
			},
		},
		{
			Shop:         entity.Shop{ID: "s-3", ShopName: "Meena Fabrics", OwnerName: "Meena", Address: "Stall 12", CategoryID: "c-1", FloorID: "f-2"},
			CategoryName: "Groceries",
			FloorName:    "First Floor",
			Offers:       []entity.Offer{},
		},
	}
}

func TestApplyShopFilter_EmptyFilterReturnsInputUnchanged(t *testing.T) {
	shops := detailsFixture()

	filtered := applyShopFilter(shops, usecase.ShopFilter{})

	require.Len(t, filtered, len(shops))
	for i := range shops {
		assert.Equal(t, shops[i].ID, filtered[i].ID)
	}
}

func TestApplyShopFilter_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "by shop name", search: "anand", want: []string{"s-2"}},
		{name: "by owner", search: "meena", want: []string{"s-3"}},
		{name: "by address", search: "stall", want: []string{"s-1", "s-2", "s-3"}},
		{name: "no match", search: "xyzzy", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := applyShopFilter(detailsFixture(), usecase.ShopFilter{Search: tt.search})

			got := make([]string, 0, len(filtered))
			for _, shop := range filtered {
				got = append(got, shop.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyShopFilter_DiscountRange(t *testing.T) {
	tests := []struct {
		name   string
		filter usecase.ShopFilter
		want   []string
	}{
		{
			// [10,50] passes {min:20,max:60}: max 50 >= 20, min 10 <= 60.
			name:   "range hits wide shop",
			filter: usecase.ShopFilter{MinDiscount: intPtr(20), MaxDiscount: intPtr(60)},
			want:   []string{"s-1"},
		},
		{
			// [10,15] fails {min:20}: best offer below the floor.
			name:   "min excludes low shop",
			filter: usecase.ShopFilter{MinDiscount: intPtr(20)},
			want:   []string{"s-1"},
		},
		{
			name:   "max alone",
			filter: usecase.ShopFilter{MaxDiscount: intPtr(12)},
			want:   []string{"s-1", "s-2"},
		},
		{
			// A shop with no offers fails any discount filter.
			name:   "zero offers always excluded",
			filter: usecase.ShopFilter{MinDiscount: intPtr(0)},
			want:   []string{"s-1", "s-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := applyShopFilter(detailsFixture(), tt.filter)

			got := make([]string, 0, len(filtered))
			for _, shop := range filtered {
				got = append(got, shop.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyShopFilter_PredicatesCompose(t *testing.T) {
	filtered := applyShopFilter(detailsFixture(), usecase.ShopFilter{
		CategoryID: "c-1",
		FloorID:    "f-1",
	})

	require.Len(t, filtered, 1)
	assert.Equal(t, "s-1", filtered[0].ID)

	// Same category filter plus a search that misses it.
	filtered = applyShopFilter(detailsFixture(), usecase.ShopFilter{
		CategoryID: "c-1",
		Search:     "anand",
	})
	assert.Empty(t, filtered)
}

func TestSortOfferDetails_Stable(t *testing.T) {
	offers := []entity.OfferDetails{
		{Offer: entity.Offer{ID: "o-1", Title: "banana", Discount: "20"}, ShopName: "B"},
		{Offer: entity.Offer{ID: "o-2", Title: "Apple", Discount: "20%"}, ShopName: "a"},
		{Offer: entity.Offer{ID: "o-3", Title: "cherry", Discount: "5"}, ShopName: "B"},
	}

	sortOfferDetails(offers, usecase.OfferSortDiscount)
	assert.Equal(t, []string{"o-1", "o-2", "o-3"}, offerIDs(offers))

	sortOfferDetails(offers, usecase.OfferSortTitle)
	assert.Equal(t, []string{"o-2", "o-1", "o-3"}, offerIDs(offers))

	sortOfferDetails(offers, usecase.OfferSortShop)
	// Case-insensitive: "a" before "B"; the two B shops keep their order.
	assert.Equal(t, []string{"o-2", "o-1", "o-3"}, offerIDs(offers))
}

func offerIDs(offers []entity.OfferDetails) []string {
	ids := make([]string, 0, len(offers))
	for _, offer := range offers {
		ids = append(ids, offer.ID)
	}

	return ids
}

func TestFilterOfferDetails(t *testing.T) {
	offers := []entity.OfferDetails{
		{Offer: entity.Offer{ID: "o-1", Title: "Rice sale", Description: "basmati"}, ShopName: "Bhavani"},
		{Offer: entity.Offer{ID: "o-2", Title: "Oil", Description: "sunflower oil"}, ShopName: "Anand"},
	}

	assert.Len(t, filterOfferDetails(offers, ""), 2)
	assert.Equal(t, []string{"o-1"}, offerIDs(filterOfferDetails(offers, "BASMATI")))
	assert.Equal(t, []string{"o-2"}, offerIDs(filterOfferDetails(offers, "anand")))
	assert.Empty(t, filterOfferDetails(offers, "nothing"))
}
