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

// RecommendationHandlerParams holds dependencies for RecommendationHandler, injected by Fx.
type RecommendationHandlerParams struct {
	fx.In

	RecUC  usecase.RecommendationUsecase
	Logger *slog.Logger
}

// RecommendationHandler serves the personalized recommendation view.
type RecommendationHandler struct {
	recUC  usecase.RecommendationUsecase
	logger *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler
func NewRecommendationHandler(params RecommendationHandlerParams) *RecommendationHandler {
	return &RecommendationHandler{
		recUC:  params.RecUC,
		logger: params.Logger,
	}
}

// Personalized handles the per-user recommendation ranking
func (h *RecommendationHandler) Personalized(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ranked, err := h.recUC.Personalized(c.Request().Context(), c.Param("userId"), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ranked, "Recommendations retrieved successfully")
}
