package professional

import (
	professionalRepo "requesto/database/repository/professional"
	userRepo "requesto/database/repository/user"
	"requesto/models"
)

// ProfessionalService defines business logic for the public directory and
// provider-owned profiles.
type ProfessionalService interface {
	// ListAll returns every profile, unlinked drafts included.
	ListAll() ([]models.Professional, error)
	// GetOwnProfile resolves the profile owned by the given provider account.
	GetOwnProfile(userID string) (*models.Professional, error)
	// CreateOwnProfile links an existing matching profile to the account or
	// creates a fresh one. Calling it twice never creates a duplicate.
	CreateOwnProfile(userID string) (*models.Professional, error)
	// UpdateOwnProfile applies a bounded partial update to the owned profile.
	UpdateOwnProfile(userID string, patch models.ProfilePatch) (*models.Professional, error)
	// AdminCreate creates a verified profile directly from admin input.
	AdminCreate(input models.AdminProfessionalInput) (*models.Professional, error)
}

// DefaultProfessionalService is the production implementation.
type DefaultProfessionalService struct {
	Repo  professionalRepo.ProfessionalRepository
	Users userRepo.UserRepository
}
