package firestore

import (
	"context"
	"log/slog"

	"retailhive/internal/domain/entity"
	"retailhive/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	client *firestore.Client
	audit  *auditSink
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(client *firestore.Client, logger *slog.Logger) repository.ShopRepository {
	return &shopRepository{
		client: client,
		audit:  newAuditSink(client, logger),
	}
}

// Create persists a new shop and returns its generated id.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) (string, error) {
	doc := repo.client.Collection(collectionShops).NewDoc()
	if _, err := doc.Set(ctx, shop); err != nil {
		return "", errors.Wrap(err, "failed to create shop")
	}
	shop.ID = doc.ID

	repo.audit.record(ctx, "Add shop", map[string]any{
		"id":       doc.ID,
		"shopName": shop.ShopName,
	})

	return doc.ID, nil
}

// FindByID retrieves a shop by id.
func (repo *shopRepository) FindByID(ctx context.Context, id string) (*entity.Shop, error) {
	snap, err := repo.client.Collection(collectionShops).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	var shop entity.Shop
	if err := snap.DataTo(&shop); err != nil {
		return nil, errors.Wrap(err, "failed to decode shop")
	}
	shop.ID = snap.Ref.ID

	return &shop, nil
}

// FindAll retrieves the full shop collection.
func (repo *shopRepository) FindAll(ctx context.Context) ([]entity.Shop, error) {
	snaps, err := repo.client.Collection(collectionShops).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]entity.Shop, 0, len(snaps))
	for _, snap := range snaps {
		var shop entity.Shop
		if err := snap.DataTo(&shop); err != nil {
			return nil, errors.Wrap(err, "failed to decode shop")
		}
		shop.ID = snap.Ref.ID
		shops = append(shops, shop)
	}

	return shops, nil
}

// Update replaces the stored shop document.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	if _, err := repo.client.Collection(collectionShops).Doc(shop.ID).Set(ctx, shop); err != nil {
		if isNotFound(err) {
			return repository.ErrShopNotFound
		}

		return errors.Wrap(err, "failed to update shop")
	}

	repo.audit.record(ctx, "Update shop", map[string]any{
		"id":       shop.ID,
		"shopName": shop.ShopName,
	})

	return nil
}

// Delete removes a shop by id.
func (repo *shopRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(collectionShops).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete shop")
	}

	repo.audit.record(ctx, "Delete shop", map[string]any{"id": id})

	return nil
}
