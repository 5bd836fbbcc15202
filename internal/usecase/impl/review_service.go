package impl

import (
	"context"
	"log/slog"
	"time"

	"retailhive/internal/domain/entity"
	domainerrors "retailhive/internal/domain/errors"
	"retailhive/internal/domain/repository"
	"retailhive/internal/usecase"

	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	shopRepo   repository.ShopRepository
	offerRepo  repository.OfferRepository
	logger     *slog.Logger

	now func() time.Time
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	shopRepo repository.ShopRepository,
	offerRepo repository.OfferRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: reviewRepo,
		shopRepo:   shopRepo,
		offerRepo:  offerRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// AddShopReview persists a review of a shop.
func (srv *reviewService) AddShopReview(ctx context.Context, review *entity.Review) (string, error) {
	if err := validateReview(review); err != nil {
		return "", err
	}
	if review.ShopID == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "shop id is required")
	}

	if _, err := srv.shopRepo.FindByID(ctx, review.ShopID); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return "", errors.Wrap(domainerrors.ErrShopNotFound, review.ShopID)
		}

		return "", errors.Wrap(err, "failed to verify reviewed shop")
	}

	srv.stampCreatedAt(review)
	id, err := srv.reviewRepo.Create(ctx, repository.ReviewScopeShop, review)
	if err != nil {
		return "", errors.Wrap(err, "failed to create shop review")
	}
	srv.logger.Info("Shop review created", "reviewID", id, "shopID", review.ShopID)

	return id, nil
}

// AddOfferReview persists a review of an offer.
func (srv *reviewService) AddOfferReview(ctx context.Context, review *entity.Review) (string, error) {
	if err := validateReview(review); err != nil {
		return "", err
	}
	if review.OfferID == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "offer id is required")
	}

	if _, err := srv.offerRepo.FindByID(ctx, review.OfferID); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return "", errors.Wrap(domainerrors.ErrOfferNotFound, review.OfferID)
		}

		return "", errors.Wrap(err, "failed to verify reviewed offer")
	}

	srv.stampCreatedAt(review)
	id, err := srv.reviewRepo.Create(ctx, repository.ReviewScopeOffer, review)
	if err != nil {
		return "", errors.Wrap(err, "failed to create offer review")
	}
	srv.logger.Info("Offer review created", "reviewID", id, "offerID", review.OfferID)

	return id, nil
}

// ListShopReviews retrieves all reviews of one shop.
func (srv *reviewService) ListShopReviews(ctx context.Context, shopID string) ([]entity.Review, error) {
	reviews, err := srv.reviewRepo.FindForItem(ctx, repository.ReviewScopeShop, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shop reviews")
	}

	return reviews, nil
}

// ListOfferReviews retrieves all reviews of one offer.
func (srv *reviewService) ListOfferReviews(ctx context.Context, offerID string) ([]entity.Review, error) {
	reviews, err := srv.reviewRepo.FindForItem(ctx, repository.ReviewScopeOffer, offerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offer reviews")
	}

	return reviews, nil
}

// UpdateReview replaces a stored review in the given scope.
func (srv *reviewService) UpdateReview(ctx context.Context, scope repository.ReviewScope, review *entity.Review) error {
	if review.ID == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "review id is required")
	}
	if err := validateReview(review); err != nil {
		return err
	}

	if err := srv.reviewRepo.Update(ctx, scope, review); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(domainerrors.ErrReviewNotFound, review.ID)
		}

		return errors.Wrap(err, "failed to update review")
	}

	return nil
}

// DeleteReview removes a review from the given scope.
func (srv *reviewService) DeleteReview(ctx context.Context, scope repository.ReviewScope, id string) error {
	if err := srv.reviewRepo.Delete(ctx, scope, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(domainerrors.ErrReviewNotFound, id)
		}

		return errors.Wrap(err, "failed to delete review")
	}
	srv.logger.Info("Review deleted", "reviewID", id, "scope", string(scope))

	return nil
}

func (srv *reviewService) stampCreatedAt(review *entity.Review) {
	if review.CreatedAt == "" {
		review.CreatedAt = srv.now().UTC().Format(time.RFC3339)
	}
}

func validateReview(review *entity.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "rating must be between 1 and 5")
	}
	if review.UserID == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "user id is required")
	}

	return nil
}
