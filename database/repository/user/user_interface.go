package userRepo

import (
	"context"

	"medicare/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user. It returns ErrDuplicateEmail when a user
	// with the same email already exists.
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	// GetByID retrieves a user by id; mongo.ErrNoDocuments when absent.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// GetByEmail retrieves a user by email; nil, nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves every user.
	GetAll(ctx context.Context) ([]models.User, error)
	// UpdateProfile sets profile fields on the user with id AND email.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, email string, update models.UserProfileUpdate) (models.UpdateOutcome, error)
	// SetField sets role or status and returns the updated user;
	// mongo.ErrNoDocuments when absent.
	SetField(ctx context.Context, id primitive.ObjectID, field, value string) (*models.User, error)
	// Delete removes a user and returns the removed document;
	// mongo.ErrNoDocuments when absent.
	Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// Count returns an estimated number of users.
	Count(ctx context.Context) (int64, error)
}
