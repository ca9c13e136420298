package handlers

import (
	"net/http"

	"carebridge/services/booking"

	"github.com/gin-gonic/gin"
)

// InitiateBookingHandler opens a booking flow for a service.
func (hb *HandlerBundle) InitiateBookingHandler(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
		NurseID   string `json:"nurseId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := hb.Booking.InitiateFlow(c.Request.Context(), c.GetString("userID"), input.ServiceID, input.NurseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetBookingHandler returns the current flow view.
func (hb *HandlerBundle) GetBookingHandler(c *gin.Context) {
	view, err := hb.Booking.GetFlow(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateBookingHandler applies draft changes.
func (hb *HandlerBundle) UpdateBookingHandler(c *gin.Context) {
	var upd booking.DraftUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := hb.Booking.UpdateDraft(c.Request.Context(), c.Param("sessionID"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RequestPaymentHandler opens the payment sheet.
func (hb *HandlerBundle) RequestPaymentHandler(c *gin.Context) {
	view, err := hb.Booking.RequestPayment(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ConfirmPaymentHandler charges and places the order.
func (hb *HandlerBundle) ConfirmPaymentHandler(c *gin.Context) {
	view, err := hb.Booking.ConfirmPayment(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CancelPaymentHandler closes the payment sheet without charging.
func (hb *HandlerBundle) CancelPaymentHandler(c *gin.Context) {
	view, err := hb.Booking.CancelPayment(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CancelBookingHandler discards the flow.
func (hb *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	if err := hb.Booking.CancelFlow(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
