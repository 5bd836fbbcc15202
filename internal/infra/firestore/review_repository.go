package firestore

import (
	"context"
	"log/slog"

	"retailhive/internal/domain/entity"
	"retailhive/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// reviewRepository implements the repository.ReviewRepository interface over
// the shopReviews and offerReviews collections.
type reviewRepository struct {
	client *firestore.Client
	audit  *auditSink
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(client *firestore.Client, logger *slog.Logger) repository.ReviewRepository {
	return &reviewRepository{
		client: client,
		audit:  newAuditSink(client, logger),
	}
}

func (repo *reviewRepository) collectionFor(scope repository.ReviewScope) string {
	if scope == repository.ReviewScopeShop {
		return collectionShopReviews
	}

	return collectionOfferReviews
}

// itemField is the foreign key column each scope filters on.
func (repo *reviewRepository) itemField(scope repository.ReviewScope) string {
	if scope == repository.ReviewScopeShop {
		return "shopId"
	}

	return "offerId"
}

// Create persists a new review and returns its generated id.
func (repo *reviewRepository) Create(ctx context.Context, scope repository.ReviewScope, review *entity.Review) (string, error) {
	collection := repo.collectionFor(scope)
	doc := repo.client.Collection(collection).NewDoc()
	if _, err := doc.Set(ctx, review); err != nil {
		return "", errors.Wrapf(err, "failed to create review in %s", collection)
	}
	review.ID = doc.ID

	repo.audit.record(ctx, "Add review to "+collection, map[string]any{
		"id":     doc.ID,
		"userId": review.UserID,
		"rating": review.Rating,
	})

	return doc.ID, nil
}

// FindAll retrieves every review in the scoped collection.
func (repo *reviewRepository) FindAll(ctx context.Context, scope repository.ReviewScope) ([]entity.Review, error) {
	iter := repo.client.Collection(repo.collectionFor(scope)).Documents(ctx)

	return repo.collect(iter)
}

// FindForItem retrieves all reviews of one shop or offer.
func (repo *reviewRepository) FindForItem(ctx context.Context, scope repository.ReviewScope, itemID string) ([]entity.Review, error) {
	iter := repo.client.Collection(repo.collectionFor(scope)).
		Where(repo.itemField(scope), "==", itemID).
		Documents(ctx)

	return repo.collect(iter)
}

// FindByUser retrieves all reviews a user has written in the scope.
func (repo *reviewRepository) FindByUser(ctx context.Context, scope repository.ReviewScope, userID string) ([]entity.Review, error) {
	iter := repo.client.Collection(repo.collectionFor(scope)).
		Where("userId", "==", userID).
		Documents(ctx)

	return repo.collect(iter)
}

// Update replaces the stored review document.
func (repo *reviewRepository) Update(ctx context.Context, scope repository.ReviewScope, review *entity.Review) error {
	collection := repo.collectionFor(scope)
	if _, err := repo.client.Collection(collection).Doc(review.ID).Set(ctx, review); err != nil {
		if isNotFound(err) {
			return repository.ErrReviewNotFound
		}

		return errors.Wrapf(err, "failed to update review in %s", collection)
	}

	repo.audit.record(ctx, "Update review in "+collection, map[string]any{
		"id":     review.ID,
		"rating": review.Rating,
	})

	return nil
}

// Delete removes a review by id.
func (repo *reviewRepository) Delete(ctx context.Context, scope repository.ReviewScope, id string) error {
	collection := repo.collectionFor(scope)
	if _, err := repo.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete review from %s", collection)
	}

	repo.audit.record(ctx, "Delete review from "+collection, map[string]any{"id": id})

	return nil
}

func (repo *reviewRepository) collect(iter *firestore.DocumentIterator) ([]entity.Review, error) {
	snaps, err := iter.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]entity.Review, 0, len(snaps))
	for _, snap := range snaps {
		var review entity.Review
		if err := snap.DataTo(&review); err != nil {
			return nil, errors.Wrap(err, "failed to decode review")
		}
		review.ID = snap.Ref.ID
		reviews = append(reviews, review)
	}

	return reviews, nil
}
