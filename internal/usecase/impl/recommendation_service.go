package impl

import (
	"context"
	"log/slog"
	"sort"

	"retailhive/config"
	"retailhive/internal/domain/entity"
	domainerrors "retailhive/internal/domain/errors"
	"retailhive/internal/domain/repository"
	"retailhive/internal/usecase"

	"github.com/pkg/errors"
)

// Recommendation rule weights and their reason strings, in evaluation order.
const (
	scoreFavorited     = 5
	scoreOwnHighReview = 3
	scoreHighAverage   = 2
	scorePopular       = 1

	reasonFavorited     = "User favorited this offer"
	reasonOwnHighReview = "User rated similar offers highly"
	reasonHighAverage   = "High average rating"
	reasonPopular       = "Popular offer"

	highRatingThreshold  = 4.0
	popularReviewsNeeded = 10

	// Trending composite weights.
	trendingViewWeight     = 0.3
	trendingFavoriteWeight = 0.4
	trendingRatingWeight   = 0.3
)

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	offerRepo      repository.OfferRepository
	userRepo       repository.UserRepository
	reviewRepo     repository.ReviewRepository
	engagementRepo repository.EngagementRepository
	cfg            *config.Config
	logger         *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(
	offerRepo repository.OfferRepository,
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
	engagementRepo repository.EngagementRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RecommendationUsecase {
	return &recommendationService{
		offerRepo:      offerRepo,
		userRepo:       userRepo,
		reviewRepo:     reviewRepo,
		engagementRepo: engagementRepo,
		cfg:            cfg,
		logger:         logger,
	}
}

// Personalized scores every offer for the user with the additive rule set
// and returns the best entries, highest score first. The sort is stable, so
// offers with equal scores keep catalog order; zero-score offers still rank,
// they just truncate first.
func (srv *recommendationService) Personalized(ctx context.Context, userID string, limit int) ([]entity.RecommendedOffer, error) {
	if limit <= 0 {
		limit = srv.cfg.DefaultLimitOrFallback()
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, userID)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	offers, err := srv.offerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offers")
	}

	allReviews, err := srv.reviewRepo.FindAll(ctx, repository.ReviewScopeOffer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offer reviews")
	}

	ranked := scoreOffers(offers, user, allReviews)
	srv.logger.Debug("Personalized recommendations computed", "userID", userID, "offers", len(ranked))

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

// scoreOffers applies the rule set. Pure; review statistics are indexed
// once so scoring is a single pass over the offers.
func scoreOffers(offers []entity.Offer, user *entity.User, allReviews []entity.Review) []entity.RecommendedOffer {
	reviewsByOffer := make(map[string][]entity.Review)
	for _, review := range allReviews {
		reviewsByOffer[review.OfferID] = append(reviewsByOffer[review.OfferID], review)
	}

	ownHighRated := make(map[string]bool)
	for _, review := range allReviews {
		if review.UserID == user.ID && review.Rating >= int(highRatingThreshold) {
			ownHighRated[review.OfferID] = true
		}
	}

	ranked := make([]entity.RecommendedOffer, 0, len(offers))
	for _, offer := range offers {
		entry := entity.RecommendedOffer{Offer: offer, Reasons: []string{}}

		if user.HasFavorite(offer.ID) {
			entry.Score += scoreFavorited
			entry.Reasons = append(entry.Reasons, reasonFavorited)
		}
		if ownHighRated[offer.ID] {
			entry.Score += scoreOwnHighReview
			entry.Reasons = append(entry.Reasons, reasonOwnHighReview)
		}

		offerReviews := reviewsByOffer[offer.ID]
		if entity.AverageRating(offerReviews) >= highRatingThreshold {
			entry.Score += scoreHighAverage
			entry.Reasons = append(entry.Reasons, reasonHighAverage)
		}
		if len(offerReviews) >= popularReviewsNeeded {
			entry.Score += scorePopular
			entry.Reasons = append(entry.Reasons, reasonPopular)
		}

		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// Trending ranks offers by the composite of their engagement counters and
// average rating. Offers with no counters or reviews score from zeroes.
func (srv *recommendationService) Trending(ctx context.Context, limit int) ([]entity.TrendingOffer, error) {
	if limit <= 0 {
		limit = srv.cfg.DefaultLimitOrFallback()
	}

	offers, err := srv.offerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offers")
	}

	counters, err := srv.engagementRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load engagement counters")
	}

	allReviews, err := srv.reviewRepo.FindAll(ctx, repository.ReviewScopeOffer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offer reviews")
	}

	ranked := scoreTrending(offers, counters, allReviews)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

func scoreTrending(offers []entity.Offer, counters []entity.EngagementCounter, allReviews []entity.Review) []entity.TrendingOffer {
	countersByOffer := make(map[string]entity.EngagementCounter, len(counters))
	for _, counter := range counters {
		countersByOffer[counter.OfferID] = counter
	}

	reviewsByOffer := make(map[string][]entity.Review)
	for _, review := range allReviews {
		reviewsByOffer[review.OfferID] = append(reviewsByOffer[review.OfferID], review)
	}

	ranked := make([]entity.TrendingOffer, 0, len(offers))
	for _, offer := range offers {
		counter := countersByOffer[offer.ID]
		rating := entity.AverageRating(reviewsByOffer[offer.ID])

		ranked = append(ranked, entity.TrendingOffer{
			Offer:         offer,
			ViewCount:     counter.ViewCount,
			FavoriteCount: counter.FavoriteCount,
			AverageRating: rating,
			Score: trendingViewWeight*float64(counter.ViewCount) +
				trendingFavoriteWeight*float64(counter.FavoriteCount) +
				trendingRatingWeight*rating,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}
