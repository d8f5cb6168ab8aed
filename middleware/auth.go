package middleware

import (
	"net/http"

	userRepo "requesto/database/repository/user"
	"requesto/models"

	"github.com/gin-gonic/gin"
)

// authUserKey is the gin context key the resolved acting account is stored
// under.
const authUserKey = "authUser"

// Authenticate resolves the acting account from the X-User-ID header set by
// the client after identity verification. Unknown accounts are rejected with
// 401 and banned accounts with 403, regardless of role.
func Authenticate(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Missing X-User-ID header"})
			return
		}

		account, err := users.GetByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to resolve account"})
			return
		}
		if account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unknown account"})
			return
		}
		if account.Banned {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Your account has been banned. Please contact support."})
			return
		}

		c.Set(authUserKey, account)
		c.Next()
	}
}

// AuthUser returns the acting account stored by Authenticate, or nil when
// the route carries no authentication.
func AuthUser(c *gin.Context) *models.User {
	v, exists := c.Get(authUserKey)
	if !exists {
		return nil
	}
	account, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return account
}
