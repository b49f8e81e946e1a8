package handlers

import (
	"net/http"

	"travelrisk/models"

	"github.com/gin-gonic/gin"
)

// travelRisks is the static advisory list shown on the client dashboard.
var travelRisks = []models.TravelRisk{
	{ID: 1, Name: "Conflict Zones", Level: "Critical"},
	{ID: 2, Name: "Natural Disasters", Level: "Critical"},
	{ID: 3, Name: "High Crime Locations", Level: "Critical"},
}

// TravelRisks serves the static advisory list.
func (h *Handlers) TravelRisks(c *gin.Context) {
	c.JSON(http.StatusOK, travelRisks)
}
