package professional

import (
	"fmt"

	"requesto/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultPhoto is used for profiles created without a picture.
const defaultPhoto = "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=200&h=200&fit=crop&crop=face"

// defaultServices is the starter offering set for self-service profiles. All
// prices start unset (free) until the provider fills them in.
func defaultServices() []models.ServicePricing {
	return []models.ServicePricing{
		{Type: models.ServiceCall, Label: "Video Call", Price: nil, Duration: "60 min"},
		{Type: models.ServiceChat, Label: "Chat", Price: nil, Duration: "30 min"},
		{Type: models.ServiceEmail, Label: "Email", Price: nil, Duration: "24h"},
	}
}

func (s *DefaultProfessionalService) owner(userID string) (*models.User, error) {
	account, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil, ErrOwnerNotFound
	}
	return account, nil
}

// resolveByOwner finds the profile belonging to an account: first by the
// explicit link, then by email (profiles that predate the account). A match
// found by email gets the link persisted immediately so later reads resolve
// by id alone.
func (s *DefaultProfessionalService) resolveByOwner(account *models.User) (*models.Professional, error) {
	pro, err := s.Repo.GetByLinkedUser(account.ID)
	if err != nil {
		return nil, err
	}
	if pro != nil {
		return pro, nil
	}

	pro, err = s.Repo.GetByEmail(account.Email)
	if err != nil || pro == nil {
		return nil, err
	}
	if pro.LinkedUserID == "" {
		pro.LinkedUserID = account.ID
		if pro.Email == "" {
			pro.Email = account.Email
		}
		if err := s.Repo.Update(pro); err != nil {
			return nil, fmt.Errorf("failed to persist profile link: %w", err)
		}
		zap.L().Info("Linked profile to account",
			zap.String("professionalId", pro.ID),
			zap.String("userId", account.ID),
		)
	}
	return pro, nil
}

// GetOwnProfile resolves the profile owned by the given provider account.
func (s *DefaultProfessionalService) GetOwnProfile(userID string) (*models.Professional, error) {
	account, err := s.owner(userID)
	if err != nil {
		return nil, err
	}
	pro, err := s.resolveByOwner(account)
	if err != nil {
		return nil, err
	}
	if pro == nil {
		return nil, ErrNoProfileYet
	}
	return pro, nil
}

// CreateOwnProfile links an existing matching profile to the account, or
// creates a fresh one seeded with default offerings. Idempotent: a second
// call returns the already-linked profile.
func (s *DefaultProfessionalService) CreateOwnProfile(userID string) (*models.Professional, error) {
	account, err := s.owner(userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.resolveByOwner(account)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// Back-fill display fields the claimed profile is missing.
		changed := false
		if existing.Name == "" && account.Name != "" {
			existing.Name = account.Name
			changed = true
		}
		if existing.Photo == "" && account.Picture != "" {
			existing.Photo = account.Picture
			changed = true
		}
		if existing.Email == "" {
			existing.Email = account.Email
			changed = true
		}
		if changed {
			if err := s.Repo.Update(existing); err != nil {
				return nil, fmt.Errorf("failed to back-fill profile: %w", err)
			}
		}
		return existing, nil
	}

	photo := account.Picture
	if photo == "" {
		photo = defaultPhoto
	}
	pro := &models.Professional{
		ID:               uuid.New().String(),
		LinkedUserID:     account.ID,
		Name:             account.Name,
		Photo:            photo,
		Verified:         false,
		Available:        true,
		AvailabilityText: "Available",
		Rating:           5,
		ReviewCount:      0,
		Services:         defaultServices(),
		Specialties:      []string{},
		Languages:        []string{"English"},
		Email:            account.Email,
	}
	if err := s.Repo.Create(pro); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	zap.L().Info("Created provider profile",
		zap.String("professionalId", pro.ID),
		zap.String("userId", account.ID),
	)
	return pro, nil
}

// UpdateOwnProfile applies a bounded partial update: nil patch fields are
// left untouched, array fields replace the stored value wholesale, and
// anything outside the allow-listed set never reaches the document.
func (s *DefaultProfessionalService) UpdateOwnProfile(userID string, patch models.ProfilePatch) (*models.Professional, error) {
	account, err := s.owner(userID)
	if err != nil {
		return nil, err
	}
	pro, err := s.resolveByOwner(account)
	if err != nil {
		return nil, err
	}
	if pro == nil {
		return nil, ErrNoProfileYet
	}

	if patch.Name != nil {
		pro.Name = *patch.Name
	}
	if patch.Title != nil {
		pro.Title = *patch.Title
	}
	if patch.Bio != nil {
		pro.Bio = *patch.Bio
	}
	if patch.Photo != nil {
		pro.Photo = *patch.Photo
	}
	if patch.Available != nil {
		pro.Available = *patch.Available
	}
	if patch.AvailabilityText != nil {
		pro.AvailabilityText = *patch.AvailabilityText
	}
	if patch.Services != nil {
		pro.Services = *patch.Services
	}
	if patch.Specialties != nil {
		pro.Specialties = *patch.Specialties
	}
	if patch.Languages != nil {
		pro.Languages = *patch.Languages
	}

	if pro.LinkedUserID == "" {
		pro.LinkedUserID = account.ID
	}
	if pro.Email == "" {
		pro.Email = account.Email
	}

	if err := s.Repo.Update(pro); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return pro, nil
}
