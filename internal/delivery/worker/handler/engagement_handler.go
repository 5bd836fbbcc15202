// Package handler contains the worker's Pub/Sub push message handlers.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"retailhive/config"
	deliverycontext "retailhive/internal/delivery/context"
	"retailhive/internal/domain/constants"
	"retailhive/internal/domain/repository"
	"retailhive/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// EngagementHandler folds engagement events pushed by Pub/Sub into the
// per-offer counters.
type EngagementHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	engagementRepo repository.EngagementRepository
}

// EngagementHandlerParams holds dependencies for the EngagementHandler
type EngagementHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	EngagementRepo repository.EngagementRepository
}

// NewEngagementHandler creates a new Pub/Sub push handler
func NewEngagementHandler(params EngagementHandlerParams) *EngagementHandler {
	// Push auth only applies to real Google Pub/Sub outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &EngagementHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		engagementRepo: params.EngagementRepo,
	}
}

// HandlePush processes one Pub/Sub push delivery. Malformed envelopes are
// acknowledged with a 4xx so they are not redelivered forever; counter
// write failures return 503 to trigger a Pub/Sub retry.
func (h *EngagementHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.EngagementEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse engagement event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing engagement event",
		slog.String("event_id", event.EventID),
		slog.String("offer_id", event.OfferID),
		slog.String("kind", event.Kind),
		slog.Int64("delta", event.Delta),
	)

	if err := h.applyEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to apply engagement event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// applyEvent increments the matching counter. Unknown kinds and empty offer
// ids are rejected as permanent errors by the caller contract; they never
// reach the repository.
func (h *EngagementHandler) applyEvent(ctx context.Context, event *service.EngagementEvent) error {
	if event.OfferID == "" {
		h.logger.Warn("[Worker] Dropping engagement event without offer id",
			slog.String("event_id", event.EventID))

		return nil
	}

	delta := event.Delta
	if delta == 0 {
		delta = 1
	}

	switch event.Kind {
	case service.EngagementKindView:
		return errors.Wrap(h.engagementRepo.IncrementViews(ctx, event.OfferID, delta), "failed to increment views")
	case service.EngagementKindFavorite:
		return errors.Wrap(h.engagementRepo.IncrementFavorites(ctx, event.OfferID, delta), "failed to increment favorites")
	default:
		h.logger.Warn("[Worker] Dropping engagement event with unknown kind",
			slog.String("event_id", event.EventID),
			slog.String("kind", event.Kind))

		return nil
	}
}

// extractRequestID resolves the trace id: message attributes first, then
// the event payload, then the transport context, else a fresh UUID.
func (h *EngagementHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.EngagementEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
