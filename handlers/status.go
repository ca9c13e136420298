package handlers

import (
	"errors"
	"net/http"
	"strings"

	"carebridge/services/booking"
	"carebridge/services/certification"
	"carebridge/services/completion"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP responses. Flow errors carry
// user-facing copy and map to 400; missing sessions and records map to 404.
func respondError(c *gin.Context, err error) {
	var bookingErr *booking.FlowError
	if errors.As(err, &bookingErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": bookingErr.Message, "code": bookingErr.Code})
		return
	}
	var certErr *certification.FlowError
	if errors.As(err, &certErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": certErr.Message, "code": certErr.Code})
		return
	}
	var completionErr *completion.FlowError
	if errors.As(err, &completionErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": completionErr.Message, "code": completionErr.Code})
		return
	}

	msg := err.Error()
	if strings.Contains(msg, "not found") {
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
