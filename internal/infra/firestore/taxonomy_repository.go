package firestore

import (
	"context"
	"log/slog"

	"retailhive/internal/domain/entity"
	"retailhive/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	client *firestore.Client
	audit  *auditSink
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(client *firestore.Client, logger *slog.Logger) repository.CategoryRepository {
	return &categoryRepository{
		client: client,
		audit:  newAuditSink(client, logger),
	}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) (string, error) {
	doc := repo.client.Collection(collectionCategories).NewDoc()
	if _, err := doc.Set(ctx, category); err != nil {
		return "", errors.Wrap(err, "failed to create category")
	}
	category.ID = doc.ID

	repo.audit.record(ctx, "Add category", map[string]any{
		"id":   doc.ID,
		"name": category.Name,
	})

	return doc.ID, nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	snap, err := repo.client.Collection(collectionCategories).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	var category entity.Category
	if err := snap.DataTo(&category); err != nil {
		return nil, errors.Wrap(err, "failed to decode category")
	}
	category.ID = snap.Ref.ID

	return &category, nil
}

func (repo *categoryRepository) FindAll(ctx context.Context) ([]entity.Category, error) {
	snaps, err := repo.client.Collection(collectionCategories).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]entity.Category, 0, len(snaps))
	for _, snap := range snaps {
		var category entity.Category
		if err := snap.DataTo(&category); err != nil {
			return nil, errors.Wrap(err, "failed to decode category")
		}
		category.ID = snap.Ref.ID
		categories = append(categories, category)
	}

	return categories, nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	if _, err := repo.client.Collection(collectionCategories).Doc(category.ID).Set(ctx, category); err != nil {
		if isNotFound(err) {
			return repository.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to update category")
	}

	repo.audit.record(ctx, "Update category", map[string]any{
		"id":   category.ID,
		"name": category.Name,
	})

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(collectionCategories).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	repo.audit.record(ctx, "Delete category", map[string]any{"id": id})

	return nil
}

// floorRepository implements the repository.FloorRepository interface.
type floorRepository struct {
	client *firestore.Client
	audit  *auditSink
}

// NewFloorRepository is the constructor for floorRepository.
func NewFloorRepository(client *firestore.Client, logger *slog.Logger) repository.FloorRepository {
	return &floorRepository{
		client: client,
		audit:  newAuditSink(client, logger),
	}
}

func (repo *floorRepository) Create(ctx context.Context, floor *entity.Floor) (string, error) {
	doc := repo.client.Collection(collectionFloors).NewDoc()
	if _, err := doc.Set(ctx, floor); err != nil {
		return "", errors.Wrap(err, "failed to create floor")
	}
	floor.ID = doc.ID

	repo.audit.record(ctx, "Add floor", map[string]any{
		"id":   doc.ID,
		"name": floor.Name,
	})

	return doc.ID, nil
}

func (repo *floorRepository) FindByID(ctx context.Context, id string) (*entity.Floor, error) {
	snap, err := repo.client.Collection(collectionFloors).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrFloorNotFound
		}

		return nil, errors.Wrap(err, "failed to find floor by ID")
	}

	var floor entity.Floor
	if err := snap.DataTo(&floor); err != nil {
		return nil, errors.Wrap(err, "failed to decode floor")
	}
	floor.ID = snap.Ref.ID

	return &floor, nil
}

func (repo *floorRepository) FindAll(ctx context.Context) ([]entity.Floor, error) {
	snaps, err := repo.client.Collection(collectionFloors).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list floors")
	}

	floors := make([]entity.Floor, 0, len(snaps))
	for _, snap := range snaps {
		var floor entity.Floor
		if err := snap.DataTo(&floor); err != nil {
			return nil, errors.Wrap(err, "failed to decode floor")
		}
		floor.ID = snap.Ref.ID
		floors = append(floors, floor)
	}

	return floors, nil
}

func (repo *floorRepository) Update(ctx context.Context, floor *entity.Floor) error {
	if _, err := repo.client.Collection(collectionFloors).Doc(floor.ID).Set(ctx, floor); err != nil {
		if isNotFound(err) {
			return repository.ErrFloorNotFound
		}

		return errors.Wrap(err, "failed to update floor")
	}

	repo.audit.record(ctx, "Update floor", map[string]any{
		"id":   floor.ID,
		"name": floor.Name,
	})

	return nil
}

func (repo *floorRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(collectionFloors).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete floor")
	}

	repo.audit.record(ctx, "Delete floor", map[string]any{"id": id})

	return nil
}
