package impl

import (
	"sort"
	"strings"

	"retailhive/internal/domain/entity"
	"retailhive/internal/usecase"
)

// applyShopFilter evaluates the filter specification against denormalized
// shops. Predicates compose by AND; an empty specification returns the input
// slice untouched.
func applyShopFilter(shops []entity.ShopDetails, filter usecase.ShopFilter) []entity.ShopDetails {
	if filter.Empty() {
		return shops
	}

	needle := strings.ToLower(filter.Search)

	filtered := make([]entity.ShopDetails, 0, len(shops))
	for _, shop := range shops {
		if needle != "" && !shopMatchesSearch(&shop, needle) {
			continue
		}
		if filter.CategoryID != "" && shop.CategoryID != filter.CategoryID {
			continue
		}
		if filter.FloorID != "" && shop.FloorID != filter.FloorID {
			continue
		}
		if !shopMatchesDiscount(&shop, filter.MinDiscount, filter.MaxDiscount) {
			continue
		}
		filtered = append(filtered, shop)
	}

	return filtered
}

func shopMatchesSearch(shop *entity.ShopDetails, needle string) bool {
	return strings.Contains(strings.ToLower(shop.ShopName), needle) ||
		strings.Contains(strings.ToLower(shop.OwnerName), needle) ||
		strings.Contains(strings.ToLower(shop.Address), needle)
}

// shopMatchesDiscount applies the discount range. A shop passes when its
// best offer reaches min and its smallest offer stays within max. A shop
// with no offers has no discounts at all and fails any non-empty range;
// min of an empty set is not 0.
func shopMatchesDiscount(shop *entity.ShopDetails, min, max *int) bool {
	if min == nil && max == nil {
		return true
	}

	highest, ok := shop.MaxDiscount()
	if !ok {
		return false
	}
	lowest, _ := shop.MinDiscount()

	if min != nil && highest < *min {
		return false
	}
	if max != nil && lowest > *max {
		return false
	}

	return true
}

// filterOfferDetails applies the case-insensitive search over title,
// description and resolved shop name. Empty search matches all.
func filterOfferDetails(offers []entity.OfferDetails, search string) []entity.OfferDetails {
	if search == "" {
		return offers
	}

	needle := strings.ToLower(search)
	filtered := make([]entity.OfferDetails, 0, len(offers))
	for _, offer := range offers {
		if strings.Contains(strings.ToLower(offer.Title), needle) ||
			strings.Contains(strings.ToLower(offer.Description), needle) ||
			strings.Contains(strings.ToLower(offer.ShopName), needle) {
			filtered = append(filtered, offer)
		}
	}

	return filtered
}

// sortOfferDetails orders offers by the requested key. The sort is stable:
// offers comparing equal keep their input order.
func sortOfferDetails(offers []entity.OfferDetails, key usecase.OfferSortKey) {
	switch key {
	case usecase.OfferSortDiscount:
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].DiscountValue() > offers[j].DiscountValue()
		})
	case usecase.OfferSortTitle:
		sort.SliceStable(offers, func(i, j int) bool {
			return strings.ToLower(offers[i].Title) < strings.ToLower(offers[j].Title)
		})
	case usecase.OfferSortShop:
		sort.SliceStable(offers, func(i, j int) bool {
			return strings.ToLower(offers[i].ShopName) < strings.ToLower(offers[j].ShopName)
		})
	}
}
