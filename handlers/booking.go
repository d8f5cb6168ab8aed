package handlers

import (
	"net/http"

	"requesto/models"
	"requesto/services/booking"
	"requesto/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation and the client-side booking views.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// BookService handles POST /api/book-service.
func (h *BookingHandler) BookService(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request")
		return
	}

	getLogger(c).Info("Received booking request",
		zap.String("professionalId", input.ProfessionalID),
		zap.String("serviceType", input.ServiceType),
		zap.String("userId", input.UserID),
	)

	resp := h.Service.Create(input)
	c.JSON(http.StatusOK, resp)
}

// UserBookings handles GET /api/user/bookings/:userId. With ?active=true
// only bookings whose session window is still open are returned.
func (h *BookingHandler) UserBookings(c *gin.Context) {
	userID := c.Param("userId")
	if !requireSelfOrAdmin(c, userID) {
		return
	}

	activeOnly := c.Query("active") == "true"
	bookings, err := h.Service.ListByUser(userID, activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}
