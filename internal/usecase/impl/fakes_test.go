package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"retailhive/config"
	"retailhive/internal/domain/entity"
	"retailhive/internal/domain/repository"
	"retailhive/internal/domain/service"
)

// In-memory fakes backing the service tests. Slices keep insertion order so
// stability assertions have a defined input order to check against.

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(defaultLimit int) *config.Config {
	return &config.Config{
		Recommend: &config.RecommendConfig{DefaultLimit: defaultLimit},
	}
}

type fakeShopRepo struct {
	shops []entity.Shop
	err   error
}

func (f *fakeShopRepo) Create(_ context.Context, shop *entity.Shop) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	id := fmt.Sprintf("shop-%d", len(f.shops)+1)
	stored := *shop
	stored.ID = id
	f.shops = append(f.shops, stored)

	return id, nil
}

func (f *fakeShopRepo) FindByID(_ context.Context, id string) (*entity.Shop, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.shops {
		if f.shops[i].ID == id {
			shop := f.shops[i]

			return &shop, nil
		}
	}

	return nil, repository.ErrShopNotFound
}

func (f *fakeShopRepo) FindAll(_ context.Context) ([]entity.Shop, error) {
	if f.err != nil {
		return nil, f.err
	}

	return append([]entity.Shop{}, f.shops...), nil
}

func (f *fakeShopRepo) Update(_ context.Context, shop *entity.Shop) error {
	for i := range f.shops {
		if f.shops[i].ID == shop.ID {
			f.shops[i] = *shop

			return nil
		}
	}

	return repository.ErrShopNotFound
}

func (f *fakeShopRepo) Delete(_ context.Context, id string) error {
	for i := range f.shops {
		if f.shops[i].ID == id {
			f.shops = append(f.shops[:i], f.shops[i+1:]...)

			return nil
		}
	}

	return repository.ErrShopNotFound
}

type fakeOfferRepo struct {
	offers   []entity.Offer
	archived []entity.Offer

	archiveErrFor map[string]error
	deleteErrFor  map[string]error
	err           error
}

func (f *fakeOfferRepo) Create(_ context.Context, offer *entity.Offer) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	id := fmt.Sprintf("offer-%d", len(f.offers)+1)
	stored := *offer
	stored.ID = id
	f.offers = append(f.offers, stored)

	return id, nil
}

func (f *fakeOfferRepo) FindByID(_ context.Context, id string) (*entity.Offer, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.offers {
		if f.offers[i].ID == id {
			offer := f.offers[i]

			return &offer, nil
		}
	}

	return nil, repository.ErrOfferNotFound
}

func (f *fakeOfferRepo) FindAll(_ context.Context) ([]entity.Offer, error) {
	if f.err != nil {
		return nil, f.err
	}

	return append([]entity.Offer{}, f.offers...), nil
}

func (f *fakeOfferRepo) FindByShop(_ context.Context, shopID string) ([]entity.Offer, error) {
	if f.err != nil {
		return nil, f.err
	}
	matched := make([]entity.Offer, 0)
	for _, offer := range f.offers {
		if offer.ShopID == shopID {
			matched = append(matched, offer)
		}
	}

	return matched, nil
}

func (f *fakeOfferRepo) Update(_ context.Context, offer *entity.Offer) error {
	for i := range f.offers {
		if f.offers[i].ID == offer.ID {
			f.offers[i] = *offer

			return nil
		}
	}

	return repository.ErrOfferNotFound
}

func (f *fakeOfferRepo) UpdateValidUntil(_ context.Context, id, validUntil string) error {
	for i := range f.offers {
		if f.offers[i].ID == id {
			f.offers[i].ValidUntil = validUntil

			return nil
		}
	}

	return repository.ErrOfferNotFound
}

func (f *fakeOfferRepo) Delete(_ context.Context, id string) error {
	if err := f.deleteErrFor[id]; err != nil {
		return err
	}
	for i := range f.offers {
		if f.offers[i].ID == id {
			f.offers = append(f.offers[:i], f.offers[i+1:]...)

			return nil
		}
	}

	return repository.ErrOfferNotFound
}

func (f *fakeOfferRepo) InsertArchived(_ context.Context, offer *entity.Offer) (string, error) {
	if err := f.archiveErrFor[offer.ID]; err != nil {
		return "", err
	}
	f.archived = append(f.archived, *offer)

	return fmt.Sprintf("arch-%d", len(f.archived)), nil
}

type fakeCategoryRepo struct {
	categories []entity.Category
	err        error
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) (string, error) {
	id := fmt.Sprintf("cat-%d", len(f.categories)+1)
	stored := *category
	stored.ID = id
	f.categories = append(f.categories, stored)

	return id, nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id string) (*entity.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			category := f.categories[i]

			return &category, nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}

	return append([]entity.Category{}, f.categories...), nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	for i := range f.categories {
		if f.categories[i].ID == category.ID {
			f.categories[i] = *category

			return nil
		}
	}

	return repository.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)

			return nil
		}
	}

	return repository.ErrCategoryNotFound
}

type fakeFloorRepo struct {
	floors []entity.Floor
	err    error
}

func (f *fakeFloorRepo) Create(_ context.Context, floor *entity.Floor) (string, error) {
	id := fmt.Sprintf("floor-%d", len(f.floors)+1)
	stored := *floor
	stored.ID = id
	f.floors = append(f.floors, stored)

	return id, nil
}

func (f *fakeFloorRepo) FindByID(_ context.Context, id string) (*entity.Floor, error) {
	for i := range f.floors {
		if f.floors[i].ID == id {
			floor := f.floors[i]

			return &floor, nil
		}
	}

	return nil, repository.ErrFloorNotFound
}

func (f *fakeFloorRepo) FindAll(_ context.Context) ([]entity.Floor, error) {
	if f.err != nil {
		return nil, f.err
	}

	return append([]entity.Floor{}, f.floors...), nil
}

func (f *fakeFloorRepo) Update(_ context.Context, floor *entity.Floor) error {
	for i := range f.floors {
		if f.floors[i].ID == floor.ID {
			f.floors[i] = *floor

			return nil
		}
	}

	return repository.ErrFloorNotFound
}

func (f *fakeFloorRepo) Delete(_ context.Context, id string) error {
	for i := range f.floors {
		if f.floors[i].ID == id {
			f.floors = append(f.floors[:i], f.floors[i+1:]...)

			return nil
		}
	}

	return repository.ErrFloorNotFound
}

type fakeUserRepo struct {
	users []entity.User
	err   error
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) (string, error) {
	id := fmt.Sprintf("user-%d", len(f.users)+1)
	stored := *user
	stored.ID = id
	f.users = append(f.users, stored)

	return id, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			user := f.users[i]
			user.Favorites = append([]string{}, f.users[i].Favorites...)

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}

	return append([]entity.User{}, f.users...), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user

			return nil
		}
	}

	return repository.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateFavorites(_ context.Context, userID string, favorites []string) error {
	for i := range f.users {
		if f.users[i].ID == userID {
			f.users[i].Favorites = append([]string{}, favorites...)

			return nil
		}
	}

	return repository.ErrUserNotFound
}

type fakeReviewRepo struct {
	shopReviews  []entity.Review
	offerReviews []entity.Review
	err          error
}

func (f *fakeReviewRepo) bucket(scope repository.ReviewScope) *[]entity.Review {
	if scope == repository.ReviewScopeShop {
		return &f.shopReviews
	}

	return &f.offerReviews
}

func (f *fakeReviewRepo) Create(_ context.Context, scope repository.ReviewScope, review *entity.Review) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	bucket := f.bucket(scope)
	id := fmt.Sprintf("review-%s-%d", scope, len(*bucket)+1)
	stored := *review
	stored.ID = id
	*bucket = append(*bucket, stored)

	return id, nil
}

func (f *fakeReviewRepo) FindAll(_ context.Context, scope repository.ReviewScope) ([]entity.Review, error) {
	if f.err != nil {
		return nil, f.err
	}

	return append([]entity.Review{}, *f.bucket(scope)...), nil
}

func (f *fakeReviewRepo) FindForItem(_ context.Context, scope repository.ReviewScope, itemID string) ([]entity.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	matched := make([]entity.Review, 0)
	for _, review := range *f.bucket(scope) {
		if (scope == repository.ReviewScopeShop && review.ShopID == itemID) ||
			(scope == repository.ReviewScopeOffer && review.OfferID == itemID) {
			matched = append(matched, review)
		}
	}

	return matched, nil
}

func (f *fakeReviewRepo) FindByUser(_ context.Context, scope repository.ReviewScope, userID string) ([]entity.Review, error) {
	matched := make([]entity.Review, 0)
	for _, review := range *f.bucket(scope) {
		if review.UserID == userID {
			matched = append(matched, review)
		}
	}

	return matched, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, scope repository.ReviewScope, review *entity.Review) error {
	bucket := f.bucket(scope)
	for i := range *bucket {
		if (*bucket)[i].ID == review.ID {
			(*bucket)[i] = *review

			return nil
		}
	}

	return repository.ErrReviewNotFound
}

func (f *fakeReviewRepo) Delete(_ context.Context, scope repository.ReviewScope, id string) error {
	bucket := f.bucket(scope)
	for i := range *bucket {
		if (*bucket)[i].ID == id {
			*bucket = append((*bucket)[:i], (*bucket)[i+1:]...)

			return nil
		}
	}

	return repository.ErrReviewNotFound
}

type fakeEngagementRepo struct {
	counters map[string]*entity.EngagementCounter
	err      error
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{counters: make(map[string]*entity.EngagementCounter)}
}

func (f *fakeEngagementRepo) FindByOffer(_ context.Context, offerID string) (*entity.EngagementCounter, error) {
	if f.err != nil {
		return nil, f.err
	}
	if counter, ok := f.counters[offerID]; ok {
		c := *counter

		return &c, nil
	}

	return &entity.EngagementCounter{OfferID: offerID}, nil
}

func (f *fakeEngagementRepo) FindAll(_ context.Context) ([]entity.EngagementCounter, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := make([]entity.EngagementCounter, 0, len(f.counters))
	for _, counter := range f.counters {
		all = append(all, *counter)
	}

	return all, nil
}

func (f *fakeEngagementRepo) IncrementViews(_ context.Context, offerID string, delta int64) error {
	f.counter(offerID).ViewCount += delta

	return nil
}

func (f *fakeEngagementRepo) IncrementFavorites(_ context.Context, offerID string, delta int64) error {
	f.counter(offerID).FavoriteCount += delta

	return nil
}

func (f *fakeEngagementRepo) counter(offerID string) *entity.EngagementCounter {
	if _, ok := f.counters[offerID]; !ok {
		f.counters[offerID] = &entity.EngagementCounter{OfferID: offerID}
	}

	return f.counters[offerID]
}

type fakeAuditLogRepo struct {
	entries []entity.AuditEntry
	err     error
}

func (f *fakeAuditLogRepo) Append(_ context.Context, entry *entity.AuditEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, *entry)

	return nil
}

func (f *fakeAuditLogRepo) FindRecent(_ context.Context, limit int) ([]entity.AuditEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	recent := append([]entity.AuditEntry{}, f.entries...)
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	if len(recent) > limit {
		recent = recent[:limit]
	}

	return recent, nil
}

type fakeEventPublisher struct {
	events []service.EngagementEvent
	err    error
}

func (f *fakeEventPublisher) PublishEngagementEvent(_ context.Context, event *service.EngagementEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, *event)

	return nil
}

func (f *fakeEventPublisher) Close() error { return nil }

type fakeQRCodeService struct {
	png []byte
	err error
}

func (f *fakeQRCodeService) GenerateShopQR(_ *entity.Shop) ([]byte, error) {
	return f.png, f.err
}

func (f *fakeQRCodeService) GenerateOfferQR(_ *entity.OfferDetails) ([]byte, error) {
	return f.png, f.err
}
