package handler

import (
	"log/slog"
	"net/http"

	"retailhive/internal/delivery/http/response"
	"retailhive/internal/domain/entity"
	"retailhive/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateProfileRequest represents the request body for updating a profile
type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address,omitempty"`
	Mobile  string `json:"mobile,omitempty"`
}

// GetUser handles retrieving a user profile
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// UpdateProfile handles replacing the stored profile fields
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.userUC.UpdateProfile(c.Request().Context(), &entity.User{
		ID:      c.Param("id"),
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Mobile:  req.Mobile,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile updated successfully")
}

// ToggleFavorite handles flipping an item in the user's favorites set
func (h *UserHandler) ToggleFavorite(c echo.Context) error {
	added, err := h.userUC.ToggleFavorite(c.Request().Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Favorite removed"
	if added {
		message = "Favorite added"
	}

	return response.Success(c, http.StatusOK, map[string]bool{"added": added}, message)
}

// FavoriteOffers handles resolving the user's favorited offers
func (h *UserHandler) FavoriteOffers(c echo.Context) error {
	offers, err := h.userUC.FavoriteOffers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offers, "Favorite offers retrieved successfully")
}
