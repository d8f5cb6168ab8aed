package user

import (
	"fmt"

	"requesto/models"

	"go.uber.org/zap"
)

// GetUserByID retrieves an account by its unique ID.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	account, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil, ErrUserNotFound
	}
	return account, nil
}

// GetAllUsers retrieves all accounts, newest first.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// SetUserRole promotes or demotes the target account. Self-action is
// rejected at this boundary so a presentation-layer guard is never the only
// protection.
func (s *DefaultUserService) SetUserRole(actingAdminID, targetID, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, InvalidRoleError{Role: role}
	}
	if actingAdminID == targetID {
		return nil, ForbiddenSelfActionError{Action: "role change"}
	}

	account, err := s.Repo.SetRole(targetID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	if account == nil {
		return nil, ErrUserNotFound
	}
	zap.L().Info("Updated account role",
		zap.String("userId", targetID),
		zap.String("role", role),
		zap.String("actingAdminId", actingAdminID),
	)
	return account, nil
}

// ToggleUserBan flips the target account's ban flag and returns the updated
// record. Self-action is rejected.
func (s *DefaultUserService) ToggleUserBan(actingAdminID, targetID string) (*models.User, error) {
	if actingAdminID == targetID {
		return nil, ForbiddenSelfActionError{Action: "ban toggle"}
	}

	account, err := s.Repo.GetByID(targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil, ErrUserNotFound
	}

	updated, err := s.Repo.SetBanned(targetID, !account.Banned)
	if err != nil {
		return nil, fmt.Errorf("failed to update ban state: %w", err)
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	zap.L().Info("Toggled account ban",
		zap.String("userId", targetID),
		zap.Bool("banned", updated.Banned),
		zap.String("actingAdminId", actingAdminID),
	)
	return updated, nil
}
