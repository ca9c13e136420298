package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListServicesHandler returns the service catalog.
func (hb *HandlerBundle) ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, hb.Catalog.ListServices())
}

// GetServiceHandler returns one service's detail page data.
func (hb *HandlerBundle) GetServiceHandler(c *gin.Context) {
	svc, err := hb.Catalog.GetService(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListCategoriesHandler returns the home-screen category grid.
func (hb *HandlerBundle) ListCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, hb.Catalog.ListCategories())
}

// ListCitiesHandler returns the supported cities.
func (hb *HandlerBundle) ListCitiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, hb.Catalog.ListCities())
}

// ListNursesHandler returns the nurse roster.
func (hb *HandlerBundle) ListNursesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, hb.Roster.ListNurses())
}

// GetNurseHandler returns one nurse's profile.
func (hb *HandlerBundle) GetNurseHandler(c *gin.Context) {
	nurse, err := hb.Roster.GetNurse(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nurse)
}
