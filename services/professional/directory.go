package professional

import (
	"fmt"

	"requesto/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListAll returns every profile, unlinked drafts included. Availability
// filtering is a client concern.
func (s *DefaultProfessionalService) ListAll() ([]models.Professional, error) {
	return s.Repo.GetAll()
}

// AdminCreate creates a verified profile directly from admin input. Name and
// title are required; everything else falls back to directory defaults.
func (s *DefaultProfessionalService) AdminCreate(input models.AdminProfessionalInput) (*models.Professional, error) {
	if input.Name == "" || input.Title == "" {
		return nil, ValidationError{Message: "name and title are required"}
	}

	photo := input.Photo
	if photo == "" {
		photo = defaultPhoto
	}
	services := input.Services
	if services == nil {
		services = []models.ServicePricing{}
	}
	specialties := input.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	languages := input.Languages
	if len(languages) == 0 {
		languages = []string{"English"}
	}

	pro := &models.Professional{
		ID:               uuid.New().String(),
		Name:             input.Name,
		Email:            input.Email,
		Title:            input.Title,
		Bio:              input.Bio,
		Photo:            photo,
		Verified:         true,
		Available:        true,
		AvailabilityText: "Available",
		Rating:           5.0,
		ReviewCount:      0,
		Services:         services,
		Specialties:      specialties,
		Languages:        languages,
	}
	if err := s.Repo.Create(pro); err != nil {
		return nil, fmt.Errorf("failed to create professional: %w", err)
	}
	zap.L().Info("Admin created professional", zap.String("professionalId", pro.ID))
	return pro, nil
}
