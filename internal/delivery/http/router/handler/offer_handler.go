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

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	RecUC   usecase.RecommendationUsecase
	Logger  *slog.Logger
}

// OfferHandler holds dependencies for offer-related handlers
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	recUC   usecase.RecommendationUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		recUC:   params.RecUC,
		logger:  params.Logger,
	}
}

// OfferRequest represents the request body for creating or updating an offer
type OfferRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Discount    string `json:"discount" validate:"required"`
	ShopID      string `json:"shop_id" validate:"required"`
	ValidUntil  string `json:"valid_until,omitempty"`
}

// ExtendValidityRequest represents the request body for extending offer validity
type ExtendValidityRequest struct {
	ValidUntil string `json:"valid_until" validate:"required"`
}

// ViewRequest carries the optional viewer identity for a view event
type ViewRequest struct {
	UserID string `json:"user_id,omitempty"`
}

func (r *OfferRequest) toEntity(id string) *entity.Offer {
	return &entity.Offer{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Discount:    r.Discount,
		ShopID:      r.ShopID,
		ValidUntil:  r.ValidUntil,
	}
}

// CreateOffer handles offer creation
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	var req OfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	id, err := h.offerUC.CreateOffer(c.Request().Context(), req.toEntity(""))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Offer created successfully")
}

// GetOffer handles retrieving one offer with its shop resolved
func (h *OfferHandler) GetOffer(c echo.Context) error {
	details, err := h.offerUC.GetOffer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details, "Offer retrieved successfully")
}

// ListOffers handles the searched and sorted offer list view
func (h *OfferHandler) ListOffers(c echo.Context) error {
	filter := usecase.OfferFilter{
		Search: c.QueryParam("search"),
		Sort:   usecase.OfferSortKey(c.QueryParam("sort")),
	}

	offers, err := h.offerUC.ListOffers(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offers, "Offers retrieved successfully")
}

// UpdateOffer handles replacing a stored offer
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	var req OfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.offerUC.UpdateOffer(c.Request().Context(), req.toEntity(c.Param("id"))); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Offer updated successfully")
}

// DeleteOffer handles offer removal
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	if err := h.offerUC.DeleteOffer(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Offer deleted successfully")
}

// ActiveOffers handles listing offers that have not expired
func (h *OfferHandler) ActiveOffers(c echo.Context) error {
	offers, err := h.offerUC.ActiveOffers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offers, "Active offers retrieved successfully")
}

// ExpiredOffers handles listing offers past their validity
func (h *OfferHandler) ExpiredOffers(c echo.Context) error {
	offers, err := h.offerUC.ExpiredOffers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offers, "Expired offers retrieved successfully")
}

// ExtendValidity handles replacing an offer's expiry date
func (h *OfferHandler) ExtendValidity(c echo.Context) error {
	var req ExtendValidityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expiry input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.offerUC.ExtendOfferValidity(c.Request().Context(), c.Param("id"), req.ValidUntil); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Offer validity extended successfully")
}

// ArchiveExpired handles the best-effort archive batch
func (h *OfferHandler) ArchiveExpired(c echo.Context) error {
	archived, err := h.offerUC.ArchiveExpiredOffers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"archived": archived}, "Expired offers archived")
}

// RecordView handles publishing a view event for an offer
func (h *OfferHandler) RecordView(c echo.Context) error {
	var req ViewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid view input")
	}

	if err := h.offerUC.RecordView(c.Request().Context(), c.Param("id"), req.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, nil, "View recorded")
}

// Trending handles the trending offer ranking
func (h *OfferHandler) Trending(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	offers, err := h.recUC.Trending(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offers, "Trending offers retrieved successfully")
}
