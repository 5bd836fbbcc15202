package impl

import (
	"context"
	"log/slog"

	"retailhive/internal/domain/entity"
	domainerrors "retailhive/internal/domain/errors"
	"retailhive/internal/domain/repository"
	"retailhive/internal/domain/service"
	"retailhive/internal/usecase"

	"github.com/pkg/errors"
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	shopRepo     repository.ShopRepository
	offerRepo    repository.OfferRepository
	categoryRepo repository.CategoryRepository
	floorRepo    repository.FloorRepository
	qrcodeSvc    service.QRCodeService
	logger       *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(
	shopRepo repository.ShopRepository,
	offerRepo repository.OfferRepository,
	categoryRepo repository.CategoryRepository,
	floorRepo repository.FloorRepository,
	qrcodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.ShopUsecase {
	return &shopService{
		shopRepo:     shopRepo,
		offerRepo:    offerRepo,
		categoryRepo: categoryRepo,
		floorRepo:    floorRepo,
		qrcodeSvc:    qrcodeSvc,
		logger:       logger,
	}
}

// CreateShop persists a new shop.
func (srv *shopService) CreateShop(ctx context.Context, shop *entity.Shop) (string, error) {
	if shop.ShopName == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "shop name is required")
	}

	id, err := srv.shopRepo.Create(ctx, shop)
	if err != nil {
		return "", errors.Wrap(err, "failed to create shop")
	}
	srv.logger.Info("Shop created", "shopID", id, "shopName", shop.ShopName)

	return id, nil
}

// GetShop retrieves one shop with its labels resolved and offers attached.
func (srv *shopService) GetShop(ctx context.Context, id string) (*entity.ShopDetails, error) {
	shop, err := srv.shopRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShopNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	offers, err := srv.offerRepo.FindByShop(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shop offers")
	}

	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories")
	}

	floors, err := srv.floorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load floors")
	}

	details := buildShopDetails([]entity.Shop{*shop}, offers, categories, floors)

	return &details[0], nil
}

// ListShops retrieves the denormalized catalog filtered by the given
// specification.
func (srv *shopService) ListShops(ctx context.Context, filter usecase.ShopFilter) ([]entity.ShopDetails, error) {
	shops, err := srv.shopRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shops")
	}

	offers, err := srv.offerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offers")
	}

	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories")
	}

	floors, err := srv.floorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load floors")
	}

	details := buildShopDetails(shops, offers, categories, floors)

	return applyShopFilter(details, filter), nil
}

// UpdateShop replaces a stored shop.
func (srv *shopService) UpdateShop(ctx context.Context, shop *entity.Shop) error {
	if shop.ID == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "shop id is required")
	}

	if err := srv.shopRepo.Update(ctx, shop); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return errors.Wrap(domainerrors.ErrShopNotFound, shop.ID)
		}

		return errors.Wrap(err, "failed to update shop")
	}
	srv.logger.Info("Shop updated", "shopID", shop.ID)

	return nil
}

// DeleteShop removes a shop. Its offers stay; their shop label resolves to
// a placeholder afterwards.
func (srv *shopService) DeleteShop(ctx context.Context, id string) error {
	if err := srv.shopRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return errors.Wrap(domainerrors.ErrShopNotFound, id)
		}

		return errors.Wrap(err, "failed to delete shop")
	}
	srv.logger.Info("Shop deleted", "shopID", id)

	return nil
}

// ShopQR renders the printable QR code for a shop.
func (srv *shopService) ShopQR(ctx context.Context, id string) ([]byte, error) {
	shop, err := srv.shopRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShopNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	png, err := srv.qrcodeSvc.GenerateShopQR(shop)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate shop QR code")
	}

	return png, nil
}
