package impl

import (
	"context"
	"log/slog"

	"retailhive/internal/domain/entity"
	domainerrors "retailhive/internal/domain/errors"
	"retailhive/internal/domain/repository"
	"retailhive/internal/usecase"

	"github.com/pkg/errors"
)

// taxonomyService implements the TaxonomyUsecase interface.
type taxonomyService struct {
	categoryRepo repository.CategoryRepository
	floorRepo    repository.FloorRepository
	logger       *slog.Logger
}

// NewTaxonomyService is the constructor for taxonomyService.
func NewTaxonomyService(
	categoryRepo repository.CategoryRepository,
	floorRepo repository.FloorRepository,
	logger *slog.Logger,
) usecase.TaxonomyUsecase {
	return &taxonomyService{
		categoryRepo: categoryRepo,
		floorRepo:    floorRepo,
		logger:       logger,
	}
}

func (srv *taxonomyService) CreateCategory(ctx context.Context, category *entity.Category) (string, error) {
	if category.Name == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "category name is required")
	}

	id, err := srv.categoryRepo.Create(ctx, category)
	if err != nil {
		return "", errors.Wrap(err, "failed to create category")
	}
	srv.logger.Info("Category created", "categoryID", id, "name", category.Name)

	return id, nil
}

func (srv *taxonomyService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories")
	}

	return categories, nil
}

func (srv *taxonomyService) UpdateCategory(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "category id is required")
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(domainerrors.ErrCategoryNotFound, category.ID)
		}

		return errors.Wrap(err, "failed to update category")
	}

	return nil
}

// DeleteCategory removes a category without touching the shops referencing
// it; they resolve to "Uncategorized" from then on.
func (srv *taxonomyService) DeleteCategory(ctx context.Context, id string) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(domainerrors.ErrCategoryNotFound, id)
		}

		return errors.Wrap(err, "failed to delete category")
	}
	srv.logger.Info("Category deleted", "categoryID", id)

	return nil
}

func (srv *taxonomyService) CreateFloor(ctx context.Context, floor *entity.Floor) (string, error) {
	if floor.Name == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "floor name is required")
	}

	id, err := srv.floorRepo.Create(ctx, floor)
	if err != nil {
		return "", errors.Wrap(err, "failed to create floor")
	}
	srv.logger.Info("Floor created", "floorID", id, "name", floor.Name)

	return id, nil
}

func (srv *taxonomyService) ListFloors(ctx context.Context) ([]entity.Floor, error) {
	floors, err := srv.floorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load floors")
	}

	return floors, nil
}

func (srv *taxonomyService) UpdateFloor(ctx context.Context, floor *entity.Floor) error {
	if floor.ID == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "floor id is required")
	}

	if err := srv.floorRepo.Update(ctx, floor); err != nil {
		if errors.Is(err, repository.ErrFloorNotFound) {
			return errors.Wrap(domainerrors.ErrFloorNotFound, floor.ID)
		}

		return errors.Wrap(err, "failed to update floor")
	}

	return nil
}

func (srv *taxonomyService) DeleteFloor(ctx context.Context, id string) error {
	if err := srv.floorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFloorNotFound) {
			return errors.Wrap(domainerrors.ErrFloorNotFound, id)
		}

		return errors.Wrap(err, "failed to delete floor")
	}
	srv.logger.Info("Floor deleted", "floorID", id)

	return nil
}
