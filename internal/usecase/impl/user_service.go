package impl

import (
	"context"
	"log/slog"
	"time"

	"retailhive/internal/domain/entity"
	domainerrors "retailhive/internal/domain/errors"
	"retailhive/internal/domain/repository"
	"retailhive/internal/domain/service"
	"retailhive/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo       repository.UserRepository
	offerRepo      repository.OfferRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger

	now func() time.Time
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	offerRepo repository.OfferRepository,
	eventPublisher service.EventPublisher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:       userRepo,
		offerRepo:      offerRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
		now:            time.Now,
	}
}

// GetUser retrieves a user profile.
func (srv *userService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile replaces the stored profile fields while preserving the
// favorites set already on record.
func (srv *userService) UpdateProfile(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "user id is required")
	}

	current, err := srv.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, user.ID)
		}

		return errors.Wrap(err, "failed to find user")
	}

	user.Favorites = current.Favorites
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update user")
	}
	srv.logger.Info("User profile updated", "userID", user.ID)

	return nil
}

// ToggleFavorite flips the membership of itemID in the user's favorites
// set. When the item is an offer, a favorite engagement event with the
// matching delta feeds the trending counters.
func (srv *userService) ToggleFavorite(ctx context.Context, userID, itemID string) (bool, error) {
	if itemID == "" {
		return false, errors.Wrap(domainerrors.ErrValidationFailed, "item id is required")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, errors.Wrap(domainerrors.ErrUserNotFound, userID)
		}

		return false, errors.Wrap(err, "failed to find user")
	}

	added := !user.HasFavorite(itemID)

	var favorites []string
	if added {
		favorites = append(append([]string{}, user.Favorites...), itemID)
	} else {
		favorites = make([]string, 0, len(user.Favorites))
		for _, id := range user.Favorites {
			if id != itemID {
				favorites = append(favorites, id)
			}
		}
	}

	if err := srv.userRepo.UpdateFavorites(ctx, userID, favorites); err != nil {
		return false, errors.Wrap(err, "failed to update favorites")
	}
	srv.logger.Info("Favorite toggled", "userID", userID, "itemID", itemID, "added", added)

	srv.publishFavoriteEvent(ctx, userID, itemID, added)

	return added, nil
}

// publishFavoriteEvent emits the counter delta when the toggled item is an
// offer. The toggle already succeeded, so a publish failure is logged and
// swallowed rather than surfaced.
func (srv *userService) publishFavoriteEvent(ctx context.Context, userID, itemID string, added bool) {
	if _, err := srv.offerRepo.FindByID(ctx, itemID); err != nil {
		// favorited a shop, or the offer is gone; no counter to move
		return
	}

	delta := int64(1)
	if !added {
		delta = -1
	}
	event := &service.EngagementEvent{
		EventID:    uuid.NewString(),
		OfferID:    itemID,
		UserID:     userID,
		Kind:       service.EngagementKindFavorite,
		Delta:      delta,
		OccurredAt: srv.now().UTC().Format(time.RFC3339),
	}
	if err := srv.eventPublisher.PublishEngagementEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish favorite event", "offerID", itemID, "error", err)
	}
}

// FavoriteOffers resolves the user's favorited offer ids into offers.
// Favorited shop ids and ids of since-deleted offers are skipped.
func (srv *userService) FavoriteOffers(ctx context.Context, userID string) ([]entity.Offer, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, userID)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	offers := make([]entity.Offer, 0, len(user.Favorites))
	for _, id := range user.Favorites {
		offer, err := srv.offerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to resolve favorite")
		}
		offers = append(offers, *offer)
	}

	return offers, nil
}
