package handlers

import (
	"net/http"

	"requesto/models"
	"requesto/services/professional"
	"requesto/utils"

	"github.com/gin-gonic/gin"
)

// ProfessionalHandler serves the public directory and admin-side creation.
type ProfessionalHandler struct {
	Service professional.ProfessionalService
}

// NewProfessionalHandler creates a new ProfessionalHandler.
func NewProfessionalHandler(service professional.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{Service: service}
}

// List handles GET /api/professionals. The full directory is returned;
// availability filtering is a client concern.
func (h *ProfessionalHandler) List(c *gin.Context) {
	pros, err := h.Service.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if pros == nil {
		pros = []models.Professional{}
	}
	c.JSON(http.StatusOK, pros)
}

// AdminCreate handles POST /api/professionals.
func (h *ProfessionalHandler) AdminCreate(c *gin.Context) {
	var input models.AdminProfessionalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid professional input")
		return
	}

	pro, err := h.Service.AdminCreate(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "professional": pro})
}
