package handlers

import (
	"net/http"

	"requesto/models"
	"requesto/services/booking"
	"requesto/services/professional"
	"requesto/utils"

	"github.com/gin-gonic/gin"
)

// ProviderHandler serves the provider-owned side of the directory: a
// provider's own profile and the bookings referencing it. The target profile
// is always derived from the authenticated account, never from a
// client-supplied professional id.
type ProviderHandler struct {
	Profiles professional.ProfessionalService
	Bookings booking.BookingService
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(profiles professional.ProfessionalService, bookings booking.BookingService) *ProviderHandler {
	return &ProviderHandler{Profiles: profiles, Bookings: bookings}
}

// GetProfile handles GET /api/provider/profile/:userId.
func (h *ProviderHandler) GetProfile(c *gin.Context) {
	userID := c.Param("userId")
	if !requireSelfOrAdmin(c, userID) {
		return
	}

	pro, err := h.Profiles.GetOwnProfile(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pro)
}

// CreateProfile handles POST /api/provider/profile.
func (h *ProviderHandler) CreateProfile(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		utils.JSONError(c, http.StatusBadRequest, "userId required")
		return
	}
	if !requireSelfOrAdmin(c, req.UserID) {
		return
	}

	pro, err := h.Profiles.CreateOwnProfile(req.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "professional": pro})
}

// UpdateProfile handles PATCH /api/provider/profile/:userId. Only the
// allow-listed patch fields ever reach the stored document.
func (h *ProviderHandler) UpdateProfile(c *gin.Context) {
	userID := c.Param("userId")
	if !requireSelfOrAdmin(c, userID) {
		return
	}

	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile patch")
		return
	}

	pro, err := h.Profiles.UpdateOwnProfile(userID, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "professional": pro})
}

// ProviderBookings handles GET /api/provider/bookings/:userId.
func (h *ProviderHandler) ProviderBookings(c *gin.Context) {
	userID := c.Param("userId")
	if !requireSelfOrAdmin(c, userID) {
		return
	}

	activeOnly := c.Query("active") == "true"
	bookings, err := h.Bookings.ListByProvider(userID, activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.BookingWithUser{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}
