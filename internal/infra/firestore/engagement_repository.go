package firestore

import (
	"context"

	"retailhive/internal/domain/entity"
	"retailhive/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// engagementRepository implements repository.EngagementRepository with one
// counter document per offer, keyed by the offer id.
type engagementRepository struct {
	client *firestore.Client
}

// NewEngagementRepository is the constructor for engagementRepository.
func NewEngagementRepository(client *firestore.Client) repository.EngagementRepository {
	return &engagementRepository{client: client}
}

// FindByOffer retrieves the counter for one offer. A missing document reads
// as a zero-valued counter.
func (repo *engagementRepository) FindByOffer(ctx context.Context, offerID string) (*entity.EngagementCounter, error) {
	snap, err := repo.client.Collection(collectionEngagement).Doc(offerID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return &entity.EngagementCounter{OfferID: offerID}, nil
		}

		return nil, errors.Wrap(err, "failed to find engagement counter")
	}

	var counter entity.EngagementCounter
	if err := snap.DataTo(&counter); err != nil {
		return nil, errors.Wrap(err, "failed to decode engagement counter")
	}
	counter.OfferID = snap.Ref.ID

	return &counter, nil
}

// FindAll retrieves every counter document.
func (repo *engagementRepository) FindAll(ctx context.Context) ([]entity.EngagementCounter, error) {
	snaps, err := repo.client.Collection(collectionEngagement).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list engagement counters")
	}

	counters := make([]entity.EngagementCounter, 0, len(snaps))
	for _, snap := range snaps {
		var counter entity.EngagementCounter
		if err := snap.DataTo(&counter); err != nil {
			return nil, errors.Wrap(err, "failed to decode engagement counter")
		}
		counter.OfferID = snap.Ref.ID
		counters = append(counters, counter)
	}

	return counters, nil
}

// IncrementViews adds delta to the view counter of an offer.
func (repo *engagementRepository) IncrementViews(ctx context.Context, offerID string, delta int64) error {
	return repo.increment(ctx, offerID, "viewCount", delta)
}

// IncrementFavorites adds delta to the favorite counter of an offer.
func (repo *engagementRepository) IncrementFavorites(ctx context.Context, offerID string, delta int64) error {
	return repo.increment(ctx, offerID, "favoriteCount", delta)
}

func (repo *engagementRepository) increment(ctx context.Context, offerID, field string, delta int64) error {
	_, err := repo.client.Collection(collectionEngagement).Doc(offerID).Set(ctx, map[string]any{
		field: firestore.Increment(delta),
	}, firestore.MergeAll)
	if err != nil {
		return errors.Wrapf(err, "failed to increment %s", field)
	}

	return nil
}
