// Package impl contains the use case implementations, including the pure
// join, scoring, aggregation and filtering logic over catalog snapshots.
package impl

import (
	"retailhive/internal/domain/entity"
)

// Placeholder labels for dangling or absent foreign keys. Broken references
// resolve to these deterministically; they are never an error.
const (
	labelUncategorized  = "Uncategorized"
	labelUnknownFloor   = "Unknown Floor"
	labelUnknownShop    = "Unknown Shop"
	labelUnknownAddress = "Unknown Address"
)

// buildShopDetails denormalizes shops against categories, floors and offers.
// Lookups go through maps built once per call, so a request costs one pass
// over each input list regardless of catalog size.
func buildShopDetails(shops []entity.Shop, offers []entity.Offer, categories []entity.Category, floors []entity.Floor) []entity.ShopDetails {
	categoryNames := make(map[string]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	floorNames := make(map[string]string, len(floors))
	for _, floor := range floors {
		floorNames[floor.ID] = floor.Name
	}

	offersByShop := make(map[string][]entity.Offer)
	for _, offer := range offers {
		offersByShop[offer.ShopID] = append(offersByShop[offer.ShopID], offer)
	}

	details := make([]entity.ShopDetails, 0, len(shops))
	for _, shop := range shops {
		categoryName, ok := categoryNames[shop.CategoryID]
		if !ok || shop.CategoryID == "" {
			categoryName = labelUncategorized
		}

		floorName, ok := floorNames[shop.FloorID]
		if !ok || shop.FloorID == "" {
			floorName = labelUnknownFloor
		}

		shopOffers := offersByShop[shop.ID]
		if shopOffers == nil {
			shopOffers = []entity.Offer{}
		}

		details = append(details, entity.ShopDetails{
			Shop:         shop,
			CategoryName: categoryName,
			FloorName:    floorName,
			Offers:       shopOffers,
		})
	}

	return details
}

// buildOfferDetails denormalizes offers against shops.
func buildOfferDetails(offers []entity.Offer, shops []entity.Shop) []entity.OfferDetails {
	shopsByID := make(map[string]entity.Shop, len(shops))
	for _, shop := range shops {
		shopsByID[shop.ID] = shop
	}

	details := make([]entity.OfferDetails, 0, len(offers))
	for _, offer := range offers {
		detail := entity.OfferDetails{
			Offer:       offer,
			ShopName:    labelUnknownShop,
			ShopAddress: labelUnknownAddress,
		}
		if shop, ok := shopsByID[offer.ShopID]; ok {
			detail.ShopName = shop.ShopName
			detail.ShopAddress = shop.Address
		}
		details = append(details, detail)
	}

	return details
}
