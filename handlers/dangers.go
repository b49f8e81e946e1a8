package handlers

import (
	"errors"
	"net/http"

	"travelrisk/database"
	"travelrisk/models"

	"github.com/gin-gonic/gin"
)

// CreateDanger stores a new per-city danger record. City and both
// coordinates are required; the store recomputes riskValue from the category
// scores, so a client-supplied value is ignored.
func (h *Handlers) CreateDanger(c *gin.Context) {
	var req models.CreateDangerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	stored, err := h.service.CreateDanger(c.Request.Context(), req.ToDanger())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to save danger"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Danger submitted",
		"danger":  stored,
	})
}

// ListDangers returns all danger records for the admin risk table.
func (h *Handlers) ListDangers(c *gin.Context) {
	dangers, err := h.service.ListDangers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Database query failed"})
		return
	}
	if len(dangers) == 0 {
		c.JSON(http.StatusOK, models.MessageResponse{Message: "No data found"})
		return
	}
	c.JSON(http.StatusOK, dangers)
}

// UpdateDanger rewrites the danger record embedded in the body. The same
// required fields apply as on create.
func (h *Handlers) UpdateDanger(c *gin.Context) {
	var req models.UpdateDangerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Danger ID is required"})
		return
	}

	stored, err := h.service.UpdateDanger(c.Request.Context(), req.ToDanger())
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Danger not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to update danger"})
		return
	}
	c.JSON(http.StatusOK, stored)
}

// DeleteDanger removes the danger record named by the dangerId query
// parameter.
func (h *Handlers) DeleteDanger(c *gin.Context) {
	dangerID := c.Query("dangerId")
	if dangerID == "" {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Danger ID is required"})
		return
	}

	if err := h.service.DeleteDanger(c.Request.Context(), dangerID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Danger not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to delete danger"})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Danger deleted successfully"})
}
