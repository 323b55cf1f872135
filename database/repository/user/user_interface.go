package userRepo

import (
	"context"

	"doctorsportal/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Save inserts the user, or refreshes the name of an existing user with the same email.
	Save(ctx context.Context, user *models.User) (*models.UpdateResult, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByEmail retrieves a user by email; (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID retrieves a user by hex object id; (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// SetRole sets the role of the user with the given id, creating the document if needed.
	SetRole(ctx context.Context, id, role string) (*models.UpdateResult, error)
}
