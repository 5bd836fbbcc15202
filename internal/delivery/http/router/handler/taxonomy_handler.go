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

// TaxonomyHandlerParams holds dependencies for TaxonomyHandler, injected by Fx.
type TaxonomyHandlerParams struct {
	fx.In

	TaxonomyUC usecase.TaxonomyUsecase
	Logger     *slog.Logger
}

// TaxonomyHandler holds dependencies for category and floor handlers
type TaxonomyHandler struct {
	taxonomyUC usecase.TaxonomyUsecase
	logger     *slog.Logger
}

// NewTaxonomyHandler is the constructor for TaxonomyHandler
func NewTaxonomyHandler(params TaxonomyHandlerParams) *TaxonomyHandler {
	return &TaxonomyHandler{
		taxonomyUC: params.TaxonomyUC,
		logger:     params.Logger,
	}
}

// LabelRequest represents the request body for a category or floor
type LabelRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// CreateCategory handles category creation
func (h *TaxonomyHandler) CreateCategory(c echo.Context) error {
	var req LabelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	id, err := h.taxonomyUC.CreateCategory(c.Request().Context(), &entity.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Category created successfully")
}

// ListCategories handles listing all categories
func (h *TaxonomyHandler) ListCategories(c echo.Context) error {
	categories, err := h.taxonomyUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// UpdateCategory handles replacing a stored category
func (h *TaxonomyHandler) UpdateCategory(c echo.Context) error {
	var req LabelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.taxonomyUC.UpdateCategory(c.Request().Context(), &entity.Category{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Category updated successfully")
}

// DeleteCategory handles category removal
func (h *TaxonomyHandler) DeleteCategory(c echo.Context) error {
	if err := h.taxonomyUC.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}

// CreateFloor handles floor creation
func (h *TaxonomyHandler) CreateFloor(c echo.Context) error {
	var req LabelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid floor input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	id, err := h.taxonomyUC.CreateFloor(c.Request().Context(), &entity.Floor{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Floor created successfully")
}

// ListFloors handles listing all floors
func (h *TaxonomyHandler) ListFloors(c echo.Context) error {
	floors, err := h.taxonomyUC.ListFloors(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, floors, "Floors retrieved successfully")
}

// UpdateFloor handles replacing a stored floor
func (h *TaxonomyHandler) UpdateFloor(c echo.Context) error {
	var req LabelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid floor input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.taxonomyUC.UpdateFloor(c.Request().Context(), &entity.Floor{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Floor updated successfully")
}

// DeleteFloor handles floor removal
func (h *TaxonomyHandler) DeleteFloor(c echo.Context) error {
	if err := h.taxonomyUC.DeleteFloor(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Floor deleted successfully")
}
