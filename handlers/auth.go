package handlers

import (
	"net/http"

	"requesto/services/identity"
	"requesto/services/user"
	"requesto/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler verifies client-supplied access tokens against the external
// identity provider and upserts the matching account.
type AuthHandler struct {
	Verifier identity.Verifier
	Users    user.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(verifier identity.Verifier, users user.UserService) *AuthHandler {
	return &AuthHandler{Verifier: verifier, Users: users}
}

// Verify handles POST /api/auth/verify.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req struct {
		AccessToken string `json:"accessToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "accessToken is required")
		return
	}

	profile, err := h.Verifier.Verify(c.Request.Context(), req.AccessToken)
	if err != nil {
		getLogger(c).Warn("Token verification failed", zap.Error(err))
		respondServiceError(c, err)
		return
	}

	account, err := h.Users.LoginOrCreate(*profile)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": account})
}
