package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"retailhive/internal/domain/entity"
	"retailhive/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// ShopQRData is the JSON payload encoded into a shop QR code.
type ShopQRData struct {
	Type        string `json:"type"`
	ShopID      string `json:"shop_id"`
	ShopName    string `json:"shop_name"`
	OwnerName   string `json:"owner_name"`
	Address     string `json:"address"`
	Link        string `json:"link,omitempty"`
	GeneratedAt string `json:"generated_at"`
}

// OfferQRData is the JSON payload encoded into an offer QR code.
type OfferQRData struct {
	Type        string `json:"type"`
	OfferID     string `json:"offer_id"`
	Title       string `json:"title"`
	Discount    string `json:"discount"`
	Description string `json:"description"`
	ShopID      string `json:"shop_id,omitempty"`
	ShopName    string `json:"shop_name,omitempty"`
	Link        string `json:"link,omitempty"`
	GeneratedAt string `json:"generated_at"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateShopQR renders a PNG QR code encoding a shop deep link.
func (s *qrcodeService) GenerateShopQR(shop *entity.Shop) ([]byte, error) {
	data := ShopQRData{
		Type:        "shop",
		ShopID:      shop.ID,
		ShopName:    shop.ShopName,
		OwnerName:   shop.OwnerName,
		Address:     shop.Address,
		Link:        s.link("/user/shop-details?id=" + shop.ID),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	return s.render(data)
}

// GenerateOfferQR renders a PNG QR code encoding an offer deep link.
func (s *qrcodeService) GenerateOfferQR(offer *entity.OfferDetails) ([]byte, error) {
	data := OfferQRData{
		Type:        "offer",
		OfferID:     offer.ID,
		Title:       offer.Title,
		Discount:    offer.Discount,
		Description: offer.Description,
		ShopID:      offer.ShopID,
		ShopName:    offer.ShopName,
		Link:        s.link("/user/shop-offers?id=" + offer.ShopID),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	return s.render(data)
}

func (s *qrcodeService) link(path string) string {
	if s.baseURL == "" {
		return ""
	}

	return s.baseURL + path
}

func (s *qrcodeService) render(payload any) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
