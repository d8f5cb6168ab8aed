package user

import (
	userRepo "requesto/database/repository/user"
	"requesto/models"
	"requesto/services/identity"
)

// UserService defines business logic for account operations.
type UserService interface {
	// LoginOrCreate resolves a verified identity profile to a durable
	// account, creating one on first login. Banned accounts are rejected.
	LoginOrCreate(profile identity.Profile) (*models.User, error)
	// GetUserByID retrieves an account by its unique ID.
	GetUserByID(id string) (*models.User, error)
	// GetAllUsers retrieves all accounts, newest first.
	GetAllUsers() ([]models.User, error)
	// SetUserRole promotes or demotes the target account. Admins cannot
	// change their own role.
	SetUserRole(actingAdminID, targetID, role string) (*models.User, error)
	// ToggleUserBan flips the target account's ban flag. Admins cannot ban
	// themselves.
	ToggleUserBan(actingAdminID, targetID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
