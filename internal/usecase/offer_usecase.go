package usecase

import (
	"context"

	"retailhive/internal/domain/entity"
)

// OfferSortKey selects the ordering of offer list views.
type OfferSortKey string

const (
	// OfferSortDiscount orders by numeric discount, highest first.
	OfferSortDiscount OfferSortKey = "discount"
	// OfferSortTitle orders by title, case-insensitive ascending.
	OfferSortTitle OfferSortKey = "title"
	// OfferSortShop orders by shop name, case-insensitive ascending.
	OfferSortShop OfferSortKey = "shop"
)

// OfferFilter is the filter/sort specification for offer list views.
type OfferFilter struct {
	// Search matches case-insensitively against title, description and
	// shop name. Empty matches all.
	Search string

	// Sort selects the ordering; empty leaves input order.
	Sort OfferSortKey
}

// OfferUsecase defines offer management and lifecycle use cases.
type OfferUsecase interface {
	// CreateOffer persists a new offer and returns its id.
	CreateOffer(ctx context.Context, offer *entity.Offer) (string, error)

	// GetOffer retrieves one offer with its shop resolved.
	GetOffer(ctx context.Context, id string) (*entity.OfferDetails, error)

	// ListOffers retrieves all offers denormalized, filtered and sorted.
	ListOffers(ctx context.Context, filter OfferFilter) ([]entity.OfferDetails, error)

	// UpdateOffer replaces a stored offer.
	UpdateOffer(ctx context.Context, offer *entity.Offer) error

	// DeleteOffer removes an offer.
	DeleteOffer(ctx context.Context, id string) error

	// ActiveOffers retrieves offers whose validity has not passed.
	ActiveOffers(ctx context.Context) ([]entity.Offer, error)

	// ExpiredOffers retrieves offers whose validity has passed.
	ExpiredOffers(ctx context.Context) ([]entity.Offer, error)

	// ExtendOfferValidity replaces the expiry date of one offer.
	ExtendOfferValidity(ctx context.Context, offerID, newExpiry string) error

	// ArchiveExpiredOffers moves every expired offer into the archive
	// collection. Best-effort: a failing record is skipped and the batch
	// continues; the count of fully archived offers is returned.
	ArchiveExpiredOffers(ctx context.Context) (int, error)

	// RecordView publishes a view event for an offer; the engagement
	// worker folds it into the trending counters.
	RecordView(ctx context.Context, offerID, userID string) error

	// OfferQR renders the printable QR code for an offer.
	OfferQR(ctx context.Context, id string) ([]byte, error)
}
