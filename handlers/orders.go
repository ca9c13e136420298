package handlers

import (
	"net/http"

	"carebridge/database/repository"
	"carebridge/models"

	"github.com/gin-gonic/gin"
)

// ListOrdersHandler returns the user's orders, optionally filtered by status
// tab and search keyword.
func (hb *HandlerBundle) ListOrdersHandler(c *gin.Context) {
	filter := repository.OrderFilter{
		Status:  models.OrderStatus(c.Query("status")),
		Keyword: c.Query("keyword"),
	}
	c.JSON(http.StatusOK, hb.Orders.List(filter))
}

// GetOrderHandler returns one order's detail.
func (hb *HandlerBundle) GetOrderHandler(c *gin.Context) {
	order, err := hb.Orders.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CancelOrderHandler cancels an order that has not started.
func (hb *HandlerBundle) CancelOrderHandler(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	// Body is optional; a bare cancel uses the default reason.
	_ = c.ShouldBindJSON(&input)
	if input.Reason == "" {
		input.Reason = "用户主动取消"
	}

	order, err := hb.Orders.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	switch order.Status {
	case models.OrderWaitingAcceptance, models.OrderWaitingService:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "当前状态不可取消"})
		return
	}
	if err := hb.Orders.Cancel(order.ID, input.Reason); err != nil {
		respondError(c, err)
		return
	}
	updated, err := hb.Orders.Get(order.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
