package firestore

import (
	"context"
	"log/slog"

	"retailhive/internal/domain/entity"
	"retailhive/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	client *firestore.Client
	audit  *auditSink
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client, logger *slog.Logger) repository.UserRepository {
	return &userRepository{
		client: client,
		audit:  newAuditSink(client, logger),
	}
}

// Create persists a new user and returns its generated id.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) (string, error) {
	doc := repo.client.Collection(collectionUsers).NewDoc()
	if _, err := doc.Set(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to create user")
	}
	user.ID = doc.ID

	repo.audit.record(ctx, "Add user", map[string]any{
		"id":    doc.ID,
		"email": user.Email,
	})

	return doc.ID, nil
}

// FindByID retrieves a user by id.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := repo.client.Collection(collectionUsers).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	var user entity.User
	if err := snap.DataTo(&user); err != nil {
		return nil, errors.Wrap(err, "failed to decode user")
	}
	user.ID = snap.Ref.ID

	return &user, nil
}

// FindAll retrieves the full user collection.
func (repo *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	snaps, err := repo.client.Collection(collectionUsers).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]entity.User, 0, len(snaps))
	for _, snap := range snaps {
		var user entity.User
		if err := snap.DataTo(&user); err != nil {
			return nil, errors.Wrap(err, "failed to decode user")
		}
		user.ID = snap.Ref.ID
		users = append(users, user)
	}

	return users, nil
}

// Update replaces the stored user document.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	if _, err := repo.client.Collection(collectionUsers).Doc(user.ID).Set(ctx, user); err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update user")
	}

	repo.audit.record(ctx, "Update user", map[string]any{"id": user.ID})

	return nil
}

// UpdateFavorites rewrites only the favorites set of a user.
func (repo *userRepository) UpdateFavorites(ctx context.Context, userID string, favorites []string) error {
	_, err := repo.client.Collection(collectionUsers).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "favorites", Value: favorites},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update user favorites")
	}

	repo.audit.record(ctx, "Update user favorites", map[string]any{
		"userId":    userID,
		"favorites": favorites,
	})

	return nil
}
