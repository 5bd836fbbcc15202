package handler

import (
	"log/slog"
	"net/http"

	"retailhive/internal/delivery/http/response"
	"retailhive/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QRCodeHandlerParams holds dependencies for QRCodeHandler, injected by Fx.
type QRCodeHandlerParams struct {
	fx.In

	ShopUC  usecase.ShopUsecase
	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// QRCodeHandler serves printable QR code images.
type QRCodeHandler struct {
	shopUC  usecase.ShopUsecase
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewQRCodeHandler is the constructor for QRCodeHandler
func NewQRCodeHandler(params QRCodeHandlerParams) *QRCodeHandler {
	return &QRCodeHandler{
		shopUC:  params.ShopUC,
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// ShopQR handles rendering a shop's QR code as PNG
func (h *QRCodeHandler) ShopQR(c echo.Context) error {
	png, err := h.shopUC.ShopQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// OfferQR handles rendering an offer's QR code as PNG
func (h *QRCodeHandler) OfferQR(c echo.Context) error {
	png, err := h.offerUC.OfferQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
