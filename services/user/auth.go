package user

import (
	"fmt"

	"requesto/models"
	"requesto/services/identity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoginOrCreate resolves a verified identity profile to an account. On first
// login the account is created; its role is decided exactly once, here. The
// first account ever created wins the atomic bootstrap claim and becomes
// admin. Existing accounts are used as stored: role and ban state are never
// refreshed from the provider payload.
func (s *DefaultUserService) LoginOrCreate(profile identity.Profile) (*models.User, error) {
	account, err := s.Repo.GetByEmail(profile.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if account == nil {
		id := uuid.New().String()
		role := models.RoleUser
		claimed, err := s.Repo.ClaimAdminBootstrap(id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve bootstrap grant: %w", err)
		}
		if claimed {
			role = models.RoleAdmin
		}

		account = &models.User{
			ID:      id,
			Email:   profile.Email,
			Name:    profile.Name,
			Picture: profile.Picture,
			Role:    role,
		}
		if err := s.Repo.Create(account); err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
		zap.L().Info("Created account",
			zap.String("userId", account.ID),
			zap.String("role", account.Role),
		)
	}

	if account.Banned {
		return nil, AccountBannedError{Email: account.Email}
	}
	return account, nil
}
