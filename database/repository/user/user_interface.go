package userRepo

import "requesto/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when no
	// such user exists.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns (nil, nil)
	// when no such user exists.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users, newest first.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// SetRole updates a user's role and returns the updated record.
	SetRole(id, role string) (*models.User, error)
	// SetBanned updates a user's ban flag and returns the updated record.
	SetBanned(id string, banned bool) (*models.User, error)
	// ClaimAdminBootstrap atomically claims the one-time bootstrap-admin
	// grant for the given user id. Exactly one caller ever receives true.
	ClaimAdminBootstrap(userID string) (bool, error)
}
