package handlers

import (
	"errors"
	"net/http"

	"requesto/middleware"
	"requesto/models"
	"requesto/services/identity"
	"requesto/services/professional"
	"requesto/services/user"
	"requesto/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError converts a service-layer error into the uniform
// {success:false, message} envelope with the matching status code. Unknown
// errors become an opaque 500.
func respondServiceError(c *gin.Context, err error) {
	var (
		verificationErr *identity.VerificationError
		bannedErr       user.AccountBannedError
		selfActionErr   user.ForbiddenSelfActionError
		invalidRoleErr  user.InvalidRoleError
		validationErr   professional.ValidationError
	)

	switch {
	case errors.As(err, &verificationErr):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid token")
	case errors.As(err, &bannedErr):
		utils.JSONError(c, http.StatusForbidden, "Your account has been banned. Please contact support.")
	case errors.As(err, &selfActionErr):
		utils.JSONError(c, http.StatusForbidden, selfActionErr.Error())
	case errors.As(err, &invalidRoleErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid role")
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, professional.ErrOwnerNotFound):
		utils.JSONError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, professional.ErrNoProfileYet):
		utils.JSONError(c, http.StatusNotFound, "No provider profile yet")
	default:
		getLogger(c).Error("Unhandled service error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// requireSelfOrAdmin enforces that the acting account matches the path
// target, unless the actor is an admin. Returns false after writing the
// error response.
func requireSelfOrAdmin(c *gin.Context, targetUserID string) bool {
	acting := middleware.AuthUser(c)
	if acting == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return false
	}
	if acting.ID != targetUserID && acting.Role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, "Cannot act on another account")
		return false
	}
	return true
}
