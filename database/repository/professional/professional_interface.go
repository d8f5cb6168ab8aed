package professionalRepo

import "requesto/models"

// ProfessionalRepository defines methods for professional profile data access.
// Lookup methods return (nil, nil) when no matching document exists.
type ProfessionalRepository interface {
	// GetByID retrieves a professional by its stable string id.
	GetByID(id string) (*models.Professional, error)
	// GetByLinkedUser retrieves the professional linked to the given user id.
	GetByLinkedUser(userID string) (*models.Professional, error)
	// GetByEmail retrieves a professional by its contact email.
	GetByEmail(email string) (*models.Professional, error)
	// GetAll retrieves every professional, drafts included.
	GetAll() ([]models.Professional, error)
	// Create inserts a new professional record.
	Create(p *models.Professional) error
	// Update replaces the stored fields of an existing professional.
	Update(p *models.Professional) error
}
