package impl

import (
	"context"
	"log/slog"
	"sort"

	"retailhive/internal/domain/entity"
	"retailhive/internal/domain/repository"
	"retailhive/internal/usecase"

	"github.com/pkg/errors"
)

const (
	topLabelCount        = 5
	defaultActivityLimit = 20
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	shopRepo     repository.ShopRepository
	offerRepo    repository.OfferRepository
	userRepo     repository.UserRepository
	reviewRepo   repository.ReviewRepository
	categoryRepo repository.CategoryRepository
	floorRepo    repository.FloorRepository
	auditRepo    repository.AuditLogRepository
	logger       *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(
	shopRepo repository.ShopRepository,
	offerRepo repository.OfferRepository,
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
	categoryRepo repository.CategoryRepository,
	floorRepo repository.FloorRepository,
	auditRepo repository.AuditLogRepository,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		shopRepo:     shopRepo,
		offerRepo:    offerRepo,
		userRepo:     userRepo,
		reviewRepo:   reviewRepo,
		categoryRepo: categoryRepo,
		floorRepo:    floorRepo,
		auditRepo:    auditRepo,
		logger:       logger,
	}
}

// Summary computes the dashboard roll-up over full collection snapshots.
func (srv *analyticsService) Summary(ctx context.Context) (*entity.AnalyticsSummary, error) {
	shops, err := srv.shopRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shops")
	}

	offers, err := srv.offerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offers")
	}

	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load users")
	}

	shopReviews, err := srv.reviewRepo.FindAll(ctx, repository.ReviewScopeShop)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shop reviews")
	}

	offerReviews, err := srv.reviewRepo.FindAll(ctx, repository.ReviewScopeOffer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offer reviews")
	}

	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories")
	}

	floors, err := srv.floorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load floors")
	}

	allReviews := append(append([]entity.Review{}, shopReviews...), offerReviews...)

	summary := &entity.AnalyticsSummary{
		TotalShops:    len(shops),
		TotalOffers:   len(offers),
		TotalUsers:    len(users),
		TotalReviews:  len(allReviews),
		AverageRating: entity.AverageRating(allReviews),
		TopCategories: topShopLabels(shops, categoryLabels(categories), func(s *entity.Shop) string { return s.CategoryID }),
		TopFloors:     topShopLabels(shops, floorLabels(floors), func(s *entity.Shop) string { return s.FloorID }),
	}
	srv.logger.Debug("Analytics summary computed",
		"shops", summary.TotalShops, "offers", summary.TotalOffers, "reviews", summary.TotalReviews)

	return summary, nil
}

func categoryLabels(categories []entity.Category) map[string]string {
	labels := make(map[string]string, len(categories))
	for _, category := range categories {
		labels[category.ID] = category.Name
	}

	return labels
}

func floorLabels(floors []entity.Floor) map[string]string {
	labels := make(map[string]string, len(floors))
	for _, floor := range floors {
		labels[floor.ID] = floor.Name
	}

	return labels
}

// topShopLabels groups shops by their resolved label and keeps the five
// largest groups. Shops with no reference set, or one that no longer
// resolves, are not counted; there is no placeholder bucket here. Ties keep
// first-encountered order.
func topShopLabels(shops []entity.Shop, labels map[string]string, key func(*entity.Shop) string) []entity.LabelCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for i := range shops {
		id := key(&shops[i])
		if id == "" {
			continue
		}
		label, ok := labels[id]
		if !ok {
			continue
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	ranked := make([]entity.LabelCount, 0, len(order))
	for _, label := range order {
		ranked = append(ranked, entity.LabelCount{Label: label, Count: counts[label]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topLabelCount {
		ranked = ranked[:topLabelCount]
	}

	return ranked
}

// RecentActivity retrieves the newest audit log entries.
func (srv *analyticsService) RecentActivity(ctx context.Context, limit int) ([]entity.AuditEntry, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	entries, err := srv.auditRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load audit log")
	}

	return entries, nil
}
