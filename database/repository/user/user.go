package userRepo

import (
	"context"
	"fmt"

	"tripmate/database/repository"
	"tripmate/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email; nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// UpdateSetDocument applies a field-level merge to a user record.
	UpdateSetDocument(ctx context.Context, id string, updates bson.M) error
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) error
}

// DocumentUserRepo implements UserRepository over the generic document store.
// User documents use the user ID as both document id and partition key.
type DocumentUserRepo struct {
	store repository.DocumentStore
}

func NewDocumentUserRepo(store repository.DocumentStore) *DocumentUserRepo {
	return &DocumentUserRepo{store: store}
}

func (r *DocumentUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	found, err := r.store.GetItem(ctx, repository.UsersCollection, id, id, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	if !found {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	return &user, nil
}

func (r *DocumentUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []models.User
	if err := r.store.QueryItems(ctx, repository.UsersCollection, bson.M{"email": email}, &users); err != nil {
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *DocumentUserRepo) Create(ctx context.Context, user *models.User) error {
	if err := r.store.CreateItem(ctx, repository.UsersCollection, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *DocumentUserRepo) UpdateSetDocument(ctx context.Context, id string, updates bson.M) error {
	if err := r.store.UpdateItem(ctx, repository.UsersCollection, id, id, updates); err != nil {
		return fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	return nil
}

func (r *DocumentUserRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.DeleteItem(ctx, repository.UsersCollection, id, id); err != nil {
		return fmt.Errorf("failed to delete user with id %s: %w", id, err)
	}
	return nil
}
