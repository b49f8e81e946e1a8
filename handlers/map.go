package handlers

import (
	"net/http"
	"strconv"

	"travelrisk/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/geo/s2"
)

// DangerZones is the public read-only feed behind the map. Without bounds it
// returns every zone; with latTop/lonLeft/latBottom/lonRight it returns only
// the zones inside the viewport rectangle.
func (h *Handlers) DangerZones(c *gin.Context) {
	dangers, err := h.service.ListDangers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Database query failed"})
		return
	}

	if viewport, ok := parseViewport(c); ok {
		inView := make([]models.Danger, 0, len(dangers))
		for _, d := range dangers {
			if viewport.ContainsLatLng(s2.LatLngFromDegrees(d.Lat, d.Lng)) {
				inView = append(inView, d)
			}
		}
		dangers = inView
	}

	if len(dangers) == 0 {
		c.JSON(http.StatusOK, models.MessageResponse{Message: "No data found"})
		return
	}
	c.JSON(http.StatusOK, dangers)
}

// parseViewport builds the s2 rectangle from the bounds query parameters.
// All four must be present and numeric; otherwise the request means "all
// zones" and ok is false.
func parseViewport(c *gin.Context) (s2.Rect, bool) {
	keys := []string{"latTop", "lonLeft", "latBottom", "lonRight"}
	bounds := make([]float64, len(keys))
	for i, key := range keys {
		raw := c.Query(key)
		if raw == "" {
			return s2.Rect{}, false
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return s2.Rect{}, false
		}
		bounds[i] = v
	}

	rect := s2.RectFromLatLng(s2.LatLngFromDegrees(bounds[2], bounds[1]))
	rect = rect.AddPoint(s2.LatLngFromDegrees(bounds[0], bounds[3]))
	return rect, true
}
