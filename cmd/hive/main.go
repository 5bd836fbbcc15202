package main

import (
	"context"
	"log/slog"
	"os"

	"retailhive/config"
	"retailhive/internal/delivery"
	"retailhive/internal/delivery/http"
	"retailhive/internal/delivery/http/middleware"
	"retailhive/internal/delivery/http/router/handler"
	"retailhive/internal/domain/service"
	fsinfra "retailhive/internal/infra/firestore"
	logs "retailhive/internal/infra/log"
	"retailhive/internal/infra/pubsub"
	"retailhive/internal/infra/qrcode"
	"retailhive/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		fsinfra.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			fsinfra.NewShopRepository,
			fsinfra.NewOfferRepository,
			fsinfra.NewCategoryRepository,
			fsinfra.NewFloorRepository,
			fsinfra.NewUserRepository,
			fsinfra.NewReviewRepository,
			fsinfra.NewEngagementRepository,
			fsinfra.NewAuditLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewShopService,
			impl.NewOfferService,
			impl.NewTaxonomyService,
			impl.NewUserService,
			impl.NewReviewService,
			impl.NewRecommendationService,
			impl.NewAnalyticsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewShopHandler,
			handler.NewOfferHandler,
			handler.NewTaxonomyHandler,
			handler.NewUserHandler,
			handler.NewReviewHandler,
			handler.NewRecommendationHandler,
			handler.NewAnalyticsHandler,
			handler.NewQRCodeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
