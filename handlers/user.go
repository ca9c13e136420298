package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListPatientsHandler returns the user's saved care recipients.
func (hb *HandlerBundle) ListPatientsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, hb.UserData.Patients())
}

// ListAddressesHandler returns the user's saved addresses.
func (hb *HandlerBundle) ListAddressesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, hb.UserData.Addresses())
}

// ListCouponsHandler returns the user's coupons.
func (hb *HandlerBundle) ListCouponsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, hb.UserData.Coupons())
}

// ListHealthRecordsHandler returns the user's care history.
func (hb *HandlerBundle) ListHealthRecordsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, hb.UserData.HealthRecords())
}

// ListReportsHandler returns the user's uploaded medical reports.
func (hb *HandlerBundle) ListReportsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, hb.UserData.Reports())
}
