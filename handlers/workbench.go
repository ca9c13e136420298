package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TaskBoardHandler returns the provider's task pool and own orders.
func (hb *HandlerBundle) TaskBoardHandler(c *gin.Context) {
	board, err := hb.Workbench.TaskBoard(c.Request.Context(), c.GetString("providerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// OpenTaskHandler reserves a pool task and starts the grab window.
func (hb *HandlerBundle) OpenTaskHandler(c *gin.Context) {
	offer, err := hb.Workbench.OpenTask(c.Request.Context(), c.GetString("providerID"), c.Param("orderID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// GrabTaskHandler claims the task before the window closes.
func (hb *HandlerBundle) GrabTaskHandler(c *gin.Context) {
	order, err := hb.Workbench.GrabTask(c.Request.Context(), c.GetString("providerID"), c.Param("orderID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
