// Package handler contains the echo HTTP handlers for the portal API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"retailhive/internal/delivery/http/response"
	"retailhive/internal/domain/entity"
	"retailhive/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler holds dependencies for shop-related handlers
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// ShopRequest represents the request body for creating or updating a shop
type ShopRequest struct {
	ShopName   string `json:"shop_name" validate:"required"`
	OwnerName  string `json:"owner_name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	Contact    string `json:"contact,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
	FloorID    string `json:"floor_id,omitempty"`
}

func (r *ShopRequest) toEntity(id string) *entity.Shop {
	return &entity.Shop{
		ID:         id,
		ShopName:   r.ShopName,
		OwnerName:  r.OwnerName,
		Address:    r.Address,
		Contact:    r.Contact,
		CategoryID: r.CategoryID,
		FloorID:    r.FloorID,
	}
}

// CreateShop handles shop creation
func (h *ShopHandler) CreateShop(c echo.Context) error {
	var req ShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	id, err := h.shopUC.CreateShop(c.Request().Context(), req.toEntity(""))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Shop created successfully")
}

// GetShop handles retrieving one shop with resolved details
func (h *ShopHandler) GetShop(c echo.Context) error {
	details, err := h.shopUC.GetShop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details, "Shop retrieved successfully")
}

// ListShops handles the filtered shop search view
func (h *ShopHandler) ListShops(c echo.Context) error {
	filter := usecase.ShopFilter{
		Search:     c.QueryParam("search"),
		CategoryID: c.QueryParam("category"),
		FloorID:    c.QueryParam("floor"),
	}

	if raw := c.QueryParam("minDiscount"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_FILTER", "minDiscount must be an integer")
		}
		filter.MinDiscount = &v
	}
	if raw := c.QueryParam("maxDiscount"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_FILTER", "maxDiscount must be an integer")
		}
		filter.MaxDiscount = &v
	}

	shops, err := h.shopUC.ListShops(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops, "Shops retrieved successfully")
}

// UpdateShop handles replacing a stored shop
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	var req ShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.shopUC.UpdateShop(c.Request().Context(), req.toEntity(c.Param("id"))); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Shop updated successfully")
}

// DeleteShop handles shop removal
func (h *ShopHandler) DeleteShop(c echo.Context) error {
	if err := h.shopUC.DeleteShop(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Shop deleted successfully")
}
