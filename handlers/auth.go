package handlers

import (
	"errors"
	"net/http"

	"carebridge/services/user"

	"github.com/gin-gonic/gin"
)

// RequestOTPHandler sends a login code to a phone number.
func (hb *HandlerBundle) RequestOTPHandler(c *gin.Context) {
	var input struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cooldown, err := hb.Auth.RequestOTP(c.Request.Context(), input.Phone)
	if err != nil {
		if errors.Is(err, user.ErrInvalidPhone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Inside the resend cooldown: surface remaining seconds with the error.
		if cooldown > 0 {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error(), "cooldownSeconds": cooldown})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cooldownSeconds": cooldown})
}

// VerifyOTPHandler consumes the code and logs the user in.
func (hb *HandlerBundle) VerifyOTPHandler(c *gin.Context) {
	var input struct {
		Phone string `json:"phone" binding:"required"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := hb.Auth.VerifyOTP(c.Request.Context(), input.Phone, input.Code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetAuthRecordHandler returns the caller's persisted auth record.
func (hb *HandlerBundle) GetAuthRecordHandler(c *gin.Context) {
	userID := c.GetString("userID")
	record, err := hb.Auth.GetAuthRecord(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// LogoutHandler clears the caller's auth record.
func (hb *HandlerBundle) LogoutHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := hb.Auth.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
