package handlers

import (
	"net/http"

	"requesto/middleware"
	"requesto/services/booking"
	"requesto/services/user"
	"requesto/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Users    user.UserService
	Bookings booking.BookingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(users user.UserService, bookings booking.BookingService) *AdminHandler {
	return &AdminHandler{Users: users, Bookings: bookings}
}

// Stats handles GET /api/admin/stats: every account and every booking with
// the referencing user attached.
func (h *AdminHandler) Stats(c *gin.Context) {
	users, err := h.Users.GetAllUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	bookings, err := h.Bookings.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users, "bookings": bookings})
}

// UpdateRole handles PATCH /api/admin/users/:userId/role.
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	acting := middleware.AuthUser(c)
	if acting == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid role")
		return
	}

	account, err := h.Users.SetUserRole(acting.ID, c.Param("userId"), req.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": account})
}

// ToggleBan handles PATCH /api/admin/users/:userId/ban.
func (h *AdminHandler) ToggleBan(c *gin.Context) {
	acting := middleware.AuthUser(c)
	if acting == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	account, err := h.Users.ToggleUserBan(acting.ID, c.Param("userId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": account, "banned": account.Banned})
}
