package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"retailhive/internal/delivery/http/response"
	"retailhive/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler serves the admin dashboard aggregates.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// Summary handles the catalog-wide dashboard roll-up
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	summary, err := h.analyticsUC.Summary(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Analytics summary retrieved successfully")
}

// RecentActivity handles the newest audit log entries
func (h *AnalyticsHandler) RecentActivity(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.analyticsUC.RecentActivity(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries, "Recent activity retrieved successfully")
}
