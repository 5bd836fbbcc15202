package handler

import (
	"log/slog"
	"net/http"

	"retailhive/internal/delivery/http/response"
	"retailhive/internal/domain/entity"
	"retailhive/internal/domain/repository"
	"retailhive/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review-related handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// ReviewRequest represents the request body for creating or updating a review
type ReviewRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	UserName string `json:"user_name" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment,omitempty"`
}

// AddShopReview handles posting a review of a shop
func (h *ReviewHandler) AddShopReview(c echo.Context) error {
	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	id, err := h.reviewUC.AddShopReview(c.Request().Context(), &entity.Review{
		ShopID:   c.Param("id"),
		UserID:   req.UserID,
		UserName: req.UserName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Review created successfully")
}

// ListShopReviews handles listing the reviews of a shop
func (h *ReviewHandler) ListShopReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListShopReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// AddOfferReview handles posting a review of an offer
func (h *ReviewHandler) AddOfferReview(c echo.Context) error {
	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	id, err := h.reviewUC.AddOfferReview(c.Request().Context(), &entity.Review{
		OfferID:  c.Param("id"),
		UserID:   req.UserID,
		UserName: req.UserName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Review created successfully")
}

// ListOfferReviews handles listing the reviews of an offer
func (h *ReviewHandler) ListOfferReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListOfferReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// UpdateReview handles replacing a stored review; the scope path segment
// selects the shop or offer collection.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	scope, ok := reviewScope(c.Param("scope"))
	if !ok {
		return response.BadRequest(c, "INVALID_SCOPE", "Scope must be 'shops' or 'offers'")
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.reviewUC.UpdateReview(c.Request().Context(), scope, &entity.Review{
		ID:       c.Param("id"),
		UserID:   req.UserID,
		UserName: req.UserName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Review updated successfully")
}

// DeleteReview handles removing a stored review
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	scope, ok := reviewScope(c.Param("scope"))
	if !ok {
		return response.BadRequest(c, "INVALID_SCOPE", "Scope must be 'shops' or 'offers'")
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), scope, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}

func reviewScope(segment string) (repository.ReviewScope, bool) {
	switch segment {
	case "shops":
		return repository.ReviewScopeShop, true
	case "offers":
		return repository.ReviewScopeOffer, true
	default:
		return "", false
	}
}
