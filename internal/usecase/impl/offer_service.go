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

// offerService implements the OfferUsecase interface.
type offerService struct {
	offerRepo      repository.OfferRepository
	shopRepo       repository.ShopRepository
	eventPublisher service.EventPublisher
	qrcodeSvc      service.QRCodeService
	logger         *slog.Logger

	// now is swapped out in tests to pin expiry decisions.
	now func() time.Time
}

// NewOfferService is the constructor for offerService.
func NewOfferService(
	offerRepo repository.OfferRepository,
	shopRepo repository.ShopRepository,
	eventPublisher service.EventPublisher,
	qrcodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.OfferUsecase {
	return &offerService{
		offerRepo:      offerRepo,
		shopRepo:       shopRepo,
		eventPublisher: eventPublisher,
		qrcodeSvc:      qrcodeSvc,
		logger:         logger,
		now:            time.Now,
	}
}

// CreateOffer persists a new offer after checking its shop exists.
func (srv *offerService) CreateOffer(ctx context.Context, offer *entity.Offer) (string, error) {
	if offer.Title == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "offer title is required")
	}
	if offer.ShopID == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "offer shop id is required")
	}

	if _, err := srv.shopRepo.FindByID(ctx, offer.ShopID); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return "", errors.Wrap(domainerrors.ErrShopNotFound, offer.ShopID)
		}

		return "", errors.Wrap(err, "failed to verify offer shop")
	}

	id, err := srv.offerRepo.Create(ctx, offer)
	if err != nil {
		return "", errors.Wrap(err, "failed to create offer")
	}
	srv.logger.Info("Offer created", "offerID", id, "shopID", offer.ShopID)

	return id, nil
}

// GetOffer retrieves one offer with its shop resolved.
func (srv *offerService) GetOffer(ctx context.Context, id string) (*entity.OfferDetails, error) {
	offer, err := srv.offerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOfferNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find offer")
	}

	details := entity.OfferDetails{
		Offer:       *offer,
		ShopName:    labelUnknownShop,
		ShopAddress: labelUnknownAddress,
	}
	shop, err := srv.shopRepo.FindByID(ctx, offer.ShopID)
	switch {
	case err == nil:
		details.ShopName = shop.ShopName
		details.ShopAddress = shop.Address
	case errors.Is(err, repository.ErrShopNotFound):
		// dangling shopId, keep the placeholders
	default:
		return nil, errors.Wrap(err, "failed to resolve offer shop")
	}

	return &details, nil
}

// ListOffers retrieves all offers denormalized, filtered and sorted.
func (srv *offerService) ListOffers(ctx context.Context, filter usecase.OfferFilter) ([]entity.OfferDetails, error) {
	offers, err := srv.offerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offers")
	}

	shops, err := srv.shopRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shops")
	}

	details := buildOfferDetails(offers, shops)
	details = filterOfferDetails(details, filter.Search)
	sortOfferDetails(details, filter.Sort)

	return details, nil
}

// UpdateOffer replaces a stored offer.
func (srv *offerService) UpdateOffer(ctx context.Context, offer *entity.Offer) error {
	if offer.ID == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "offer id is required")
	}

	if err := srv.offerRepo.Update(ctx, offer); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return errors.Wrap(domainerrors.ErrOfferNotFound, offer.ID)
		}

		return errors.Wrap(err, "failed to update offer")
	}
	srv.logger.Info("Offer updated", "offerID", offer.ID)

	return nil
}

// DeleteOffer removes an offer.
func (srv *offerService) DeleteOffer(ctx context.Context, id string) error {
	if err := srv.offerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return errors.Wrap(domainerrors.ErrOfferNotFound, id)
		}

		return errors.Wrap(err, "failed to delete offer")
	}
	srv.logger.Info("Offer deleted", "offerID", id)

	return nil
}

// ActiveOffers retrieves offers whose validity has not passed.
func (srv *offerService) ActiveOffers(ctx context.Context) ([]entity.Offer, error) {
	return srv.offersByState(ctx, true)
}

// ExpiredOffers retrieves offers whose validity has passed.
func (srv *offerService) ExpiredOffers(ctx context.Context) ([]entity.Offer, error) {
	return srv.offersByState(ctx, false)
}

func (srv *offerService) offersByState(ctx context.Context, active bool) ([]entity.Offer, error) {
	offers, err := srv.offerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offers")
	}

	now := srv.now()
	matched := make([]entity.Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.Active(now) == active {
			matched = append(matched, offer)
		}
	}

	return matched, nil
}

// ExtendOfferValidity replaces the expiry date of one offer. The new date
// must parse; extending with garbage would silently make the offer
// immortal.
func (srv *offerService) ExtendOfferValidity(ctx context.Context, offerID, newExpiry string) error {
	if !validExpiryDate(newExpiry) {
		return errors.Wrap(domainerrors.ErrInvalidExpiryDate, newExpiry)
	}

	if err := srv.offerRepo.UpdateValidUntil(ctx, offerID, newExpiry); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return errors.Wrap(domainerrors.ErrOfferNotFound, offerID)
		}

		return errors.Wrap(err, "failed to extend offer validity")
	}
	srv.logger.Info("Offer validity extended", "offerID", offerID, "validUntil", newExpiry)

	return nil
}

func validExpiryDate(value string) bool {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}

	return false
}

// ArchiveExpiredOffers copies every expired offer into the archive and
// deletes the source. The pass is best-effort per offer: one failing record
// is logged and skipped, the rest of the batch continues. Returns the count
// of offers fully moved.
func (srv *offerService) ArchiveExpiredOffers(ctx context.Context) (int, error) {
	offers, err := srv.offerRepo.FindAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load offers")
	}

	now := srv.now()
	archived := 0
	for _, offer := range offers {
		if !offer.Expired(now) {
			continue
		}

		if _, err := srv.offerRepo.InsertArchived(ctx, &offer); err != nil {
			srv.logger.Warn("Failed to archive expired offer", "offerID", offer.ID, "error", err)

			continue
		}
		if err := srv.offerRepo.Delete(ctx, offer.ID); err != nil {
			// The copy landed but the source remains; the next archive run
			// will write a duplicate archive record rather than lose data.
			srv.logger.Warn("Failed to delete archived offer", "offerID", offer.ID, "error", err)

			continue
		}
		archived++
	}
	srv.logger.Info("Expired offers archived", "count", archived)

	return archived, nil
}

// RecordView publishes a view event for the offer. The engagement worker
// folds it into the trending counters asynchronously.
func (srv *offerService) RecordView(ctx context.Context, offerID, userID string) error {
	if _, err := srv.offerRepo.FindByID(ctx, offerID); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return errors.Wrap(domainerrors.ErrOfferNotFound, offerID)
		}

		return errors.Wrap(err, "failed to find offer")
	}

	event := &service.EngagementEvent{
		EventID:    uuid.NewString(),
		OfferID:    offerID,
		UserID:     userID,
		Kind:       service.EngagementKindView,
		Delta:      1,
		OccurredAt: srv.now().UTC().Format(time.RFC3339),
	}
	if err := srv.eventPublisher.PublishEngagementEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish view event")
	}

	return nil
}

// OfferQR renders the printable QR code for an offer.
func (srv *offerService) OfferQR(ctx context.Context, id string) ([]byte, error) {
	details, err := srv.GetOffer(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeSvc.GenerateOfferQR(details)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate offer QR code")
	}

	return png, nil
}
