// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"retailhive/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShopHandler           *handler.ShopHandler
	OfferHandler          *handler.OfferHandler
	TaxonomyHandler       *handler.TaxonomyHandler
	UserHandler           *handler.UserHandler
	ReviewHandler         *handler.ReviewHandler
	RecommendationHandler *handler.RecommendationHandler
	AnalyticsHandler      *handler.AnalyticsHandler
	QRCodeHandler         *handler.QRCodeHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	shops := api.Group("/shops")
	{
		shops.POST("", r.params.ShopHandler.CreateShop)
		shops.GET("", r.params.ShopHandler.ListShops)
		shops.GET("/:id", r.params.ShopHandler.GetShop)
		shops.PUT("/:id", r.params.ShopHandler.UpdateShop)
		shops.DELETE("/:id", r.params.ShopHandler.DeleteShop)

		shops.POST("/:id/reviews", r.params.ReviewHandler.AddShopReview)
		shops.GET("/:id/reviews", r.params.ReviewHandler.ListShopReviews)
	}

	offers := api.Group("/offers")
	{
		offers.POST("", r.params.OfferHandler.CreateOffer)
		offers.GET("", r.params.OfferHandler.ListOffers)

		// Static segments must register before the :id routes.
		offers.GET("/active", r.params.OfferHandler.ActiveOffers)
		offers.GET("/expired", r.params.OfferHandler.ExpiredOffers)
		offers.GET("/trending", r.params.OfferHandler.Trending)
		offers.POST("/archive-expired", r.params.OfferHandler.ArchiveExpired)

		offers.GET("/:id", r.params.OfferHandler.GetOffer)
		offers.PUT("/:id", r.params.OfferHandler.UpdateOffer)
		offers.DELETE("/:id", r.params.OfferHandler.DeleteOffer)
		offers.POST("/:id/extend", r.params.OfferHandler.ExtendValidity)
		offers.POST("/:id/view", r.params.OfferHandler.RecordView)

		offers.POST("/:id/reviews", r.params.ReviewHandler.AddOfferReview)
		offers.GET("/:id/reviews", r.params.ReviewHandler.ListOfferReviews)
	}

	categories := api.Group("/categories")
	{
		categories.POST("", r.params.TaxonomyHandler.CreateCategory)
		categories.GET("", r.params.TaxonomyHandler.ListCategories)
		categories.PUT("/:id", r.params.TaxonomyHandler.UpdateCategory)
		categories.DELETE("/:id", r.params.TaxonomyHandler.DeleteCategory)
	}

	floors := api.Group("/floors")
	{
		floors.POST("", r.params.TaxonomyHandler.CreateFloor)
		floors.GET("", r.params.TaxonomyHandler.ListFloors)
		floors.PUT("/:id", r.params.TaxonomyHandler.UpdateFloor)
		floors.DELETE("/:id", r.params.TaxonomyHandler.DeleteFloor)
	}

	users := api.Group("/users")
	{
		users.GET("/:id", r.params.UserHandler.GetUser)
		users.PUT("/:id", r.params.UserHandler.UpdateProfile)
		users.POST("/:id/favorites/:itemId", r.params.UserHandler.ToggleFavorite)
		users.GET("/:id/favorites/offers", r.params.UserHandler.FavoriteOffers)
	}

	reviews := api.Group("/reviews")
	{
		reviews.PUT("/:scope/:id", r.params.ReviewHandler.UpdateReview)
		reviews.DELETE("/:scope/:id", r.params.ReviewHandler.DeleteReview)
	}

	api.GET("/recommendations/:userId", r.params.RecommendationHandler.Personalized)

	analytics := api.Group("/analytics")
	{
		analytics.GET("/summary", r.params.AnalyticsHandler.Summary)
		analytics.GET("/activity", r.params.AnalyticsHandler.RecentActivity)
	}

	qrcodes := api.Group("/qrcodes")
	{
		qrcodes.GET("/shops/:id", r.params.QRCodeHandler.ShopQR)
		qrcodes.GET("/offers/:id", r.params.QRCodeHandler.OfferQR)
	}
}
