package handlers

import (
	"net/http"
	"time"

	"carebridge/utils"

	"github.com/gin-gonic/gin"
)

// ProviderLoginHandler issues a workbench token for a rostered provider.
// Credential checks are out of scope; the provider only needs to exist.
func (hb *HandlerBundle) ProviderLoginHandler(c *gin.Context) {
	var input struct {
		ProviderID string `json:"providerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	nurse, err := hb.Roster.GetNurse(input.ProviderID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "provider not found"})
		return
	}

	token, err := utils.GenerateToken(nurse.ID, "provider", 7*24*time.Hour)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "provider": nurse})
}
