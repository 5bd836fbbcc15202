// Package firestore contains the concrete implementation of the persistence
// layer backed by Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"
	"time"

	"retailhive/config"
	"retailhive/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore collection names.
const (
	collectionShops          = "shops"
	collectionOffers         = "offers"
	collectionArchivedOffers = "archivedOffers"
	collectionCategories     = "categories"
	collectionFloors         = "floors"
	collectionUsers          = "users"
	collectionShopReviews    = "shopReviews"
	collectionOfferReviews   = "offerReviews"
	collectionEngagement     = "engagementCounters"
	collectionUserLogs       = "userLogs"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client for the catalog project
func New(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firestore
	if cfg == nil {
		return nil, errors.New("firestore configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// isNotFound reports whether a Firestore error means the document is absent.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// auditSink mirrors successful repository calls into the userLogs
// collection. Mirror failures never propagate; they are logged at warn and
// swallowed so the audited operation still succeeds.
type auditSink struct {
	client *firestore.Client
	logger *slog.Logger
}

func newAuditSink(client *firestore.Client, logger *slog.Logger) *auditSink {
	return &auditSink{client: client, logger: logger}
}

func (s *auditSink) record(ctx context.Context, action string, payload map[string]any) {
	_, _, err := s.client.Collection(collectionUserLogs).Add(ctx, map[string]any{
		"action":    action,
		"payload":   payload,
		"userId":    "system",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		s.logger.Warn("audit log write failed",
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}
