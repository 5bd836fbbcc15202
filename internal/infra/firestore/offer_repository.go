package firestore

import (
	"context"
	"log/slog"

	"retailhive/internal/domain/entity"
	"retailhive/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	client *firestore.Client
	audit  *auditSink
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(client *firestore.Client, logger *slog.Logger) repository.OfferRepository {
	return &offerRepository{
		client: client,
		audit:  newAuditSink(client, logger),
	}
}

// Create persists a new offer and returns its generated id.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) (string, error) {
	doc := repo.client.Collection(collectionOffers).NewDoc()
	if _, err := doc.Set(ctx, offer); err != nil {
		return "", errors.Wrap(err, "failed to create offer")
	}
	offer.ID = doc.ID

	repo.audit.record(ctx, "Add offer", map[string]any{
		"id":    doc.ID,
		"title": offer.Title,
	})

	return doc.ID, nil
}

// FindByID retrieves an offer by id.
func (repo *offerRepository) FindByID(ctx context.Context, id string) (*entity.Offer, error) {
	snap, err := repo.client.Collection(collectionOffers).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	var offer entity.Offer
	if err := snap.DataTo(&offer); err != nil {
		return nil, errors.Wrap(err, "failed to decode offer")
	}
	offer.ID = snap.Ref.ID

	return &offer, nil
}

// FindAll retrieves the full offer collection.
func (repo *offerRepository) FindAll(ctx context.Context) ([]entity.Offer, error) {
	return repo.collect(repo.client.Collection(collectionOffers).Documents(ctx))
}

// FindByShop retrieves all offers belonging to a shop.
func (repo *offerRepository) FindByShop(ctx context.Context, shopID string) ([]entity.Offer, error) {
	iter := repo.client.Collection(collectionOffers).
		Where("shopId", "==", shopID).
		Documents(ctx)

	return repo.collect(iter)
}

// Update replaces the stored offer document.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	if _, err := repo.client.Collection(collectionOffers).Doc(offer.ID).Set(ctx, offer); err != nil {
		if isNotFound(err) {
			return repository.ErrOfferNotFound
		}

		return errors.Wrap(err, "failed to update offer")
	}

	repo.audit.record(ctx, "Update offer", map[string]any{
		"id":    offer.ID,
		"title": offer.Title,
	})

	return nil
}

// UpdateValidUntil rewrites only the validity field of an offer.
func (repo *offerRepository) UpdateValidUntil(ctx context.Context, id, validUntil string) error {
	_, err := repo.client.Collection(collectionOffers).Doc(id).Update(ctx, []firestore.Update{
		{Path: "validUntil", Value: validUntil},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrOfferNotFound
		}

		return errors.Wrap(err, "failed to update offer validity")
	}

	repo.audit.record(ctx, "Extend offer validity", map[string]any{
		"id":         id,
		"validUntil": validUntil,
	})

	return nil
}

// Delete removes an offer by id.
func (repo *offerRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(collectionOffers).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete offer")
	}

	repo.audit.record(ctx, "Delete offer", map[string]any{"id": id})

	return nil
}

// InsertArchived copies an offer into the archive collection.
func (repo *offerRepository) InsertArchived(ctx context.Context, offer *entity.Offer) (string, error) {
	doc := repo.client.Collection(collectionArchivedOffers).NewDoc()
	if _, err := doc.Set(ctx, offer); err != nil {
		return "", errors.Wrap(err, "failed to archive offer")
	}

	repo.audit.record(ctx, "Archive offer", map[string]any{
		"id":         offer.ID,
		"archivedId": doc.ID,
	})

	return doc.ID, nil
}

func (repo *offerRepository) collect(iter *firestore.DocumentIterator) ([]entity.Offer, error) {
	snaps, err := iter.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	offers := make([]entity.Offer, 0, len(snaps))
	for _, snap := range snaps {
		var offer entity.Offer
		if err := snap.DataTo(&offer); err != nil {
			return nil, errors.Wrap(err, "failed to decode offer")
		}
		offer.ID = snap.Ref.ID
		offers = append(offers, offer)
	}

	return offers, nil
}
