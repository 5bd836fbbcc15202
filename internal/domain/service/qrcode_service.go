// Package service defines interfaces for external collaborators consumed by
// the use case layer.
package service

import (
	"retailhive/internal/domain/entity"
)

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateShopQR renders a PNG QR code encoding a shop deep link.
	GenerateShopQR(shop *entity.Shop) ([]byte, error)

	// GenerateOfferQR renders a PNG QR code encoding an offer deep link,
	// including the resolved shop name so the scan is useful offline.
	GenerateOfferQR(offer *entity.OfferDetails) ([]byte, error)
}
