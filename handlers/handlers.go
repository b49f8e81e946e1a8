package handlers

import (
	"net/http"

	"travelrisk/database"

	"github.com/gin-gonic/gin"
)

// Handlers translates HTTP requests into store operations.
type Handlers struct {
	service *database.Service
}

// NewHandlers creates a new handlers instance.
func NewHandlers(service *database.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// HealthCheck returns the service health status.
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "travelrisk",
	})
}

// allowedVerbs lists the verbs each endpoint serves. The three resource
// endpoints share the uniform create/list/update/delete mapping; the rest are
// single-verb.
var allowedVerbs = map[string]string{
	"/api/users":        "POST, GET, PUT, DELETE",
	"/api/reports":      "POST, GET, PUT, DELETE",
	"/api/dangers":      "POST, GET, PUT, DELETE",
	"/api/auth/login":   "POST",
	"/api/danger-zones": "GET",
	"/api/travel-risks": "GET",
	"/health":           "GET",
}

// MethodNotAllowed answers unsupported verbs with the verbs the endpoint
// actually serves.
func MethodNotAllowed(c *gin.Context) {
	allow, ok := allowedVerbs[c.Request.URL.Path]
	if !ok {
		allow = "POST, GET, PUT, DELETE"
	}
	c.Header("Allow", allow)
	c.String(http.StatusMethodNotAllowed, "Method %s Not Allowed", c.Request.Method)
}
