// Package usecase defines the application use case interfaces and their DTOs.
package usecase

import (
	"context"

	"retailhive/internal/domain/entity"
)

// ShopFilter is the filter specification for shop search views. Zero values
// mean "no constraint"; an entirely zero filter returns the input unchanged.
type ShopFilter struct {
	// Search matches case-insensitively against shop name, owner name and
	// address.
	Search string

	// CategoryID and FloorID are exact-match filters.
	CategoryID string
	FloorID    string

	// MinDiscount requires the shop's best offer to reach at least this
	// discount; MaxDiscount requires the shop's smallest offer discount to
	// stay at or below it. A shop with no offers fails any discount filter.
	MinDiscount *int
	MaxDiscount *int
}

// Empty reports whether the filter constrains anything.
func (f ShopFilter) Empty() bool {
	return f.Search == "" && f.CategoryID == "" && f.FloorID == "" &&
		f.MinDiscount == nil && f.MaxDiscount == nil
}

// ShopUsecase defines shop management and browsing use cases.
type ShopUsecase interface {
	// CreateShop persists a new shop and returns its id.
	CreateShop(ctx context.Context, shop *entity.Shop) (string, error)

	// GetShop retrieves one shop with resolved category/floor labels and
	// its offers.
	GetShop(ctx context.Context, id string) (*entity.ShopDetails, error)

	// ListShops retrieves all shops denormalized, filtered by the given
	// specification.
	ListShops(ctx context.Context, filter ShopFilter) ([]entity.ShopDetails, error)

	// UpdateShop replaces a stored shop.
	UpdateShop(ctx context.Context, shop *entity.Shop) error

	// DeleteShop removes a shop.
	DeleteShop(ctx context.Context, id string) error

	// ShopQR renders the printable QR code for a shop.
	ShopQR(ctx context.Context, id string) ([]byte, error)
}
