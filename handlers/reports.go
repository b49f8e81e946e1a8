package handlers

import (
	"errors"
	"net/http"

	"travelrisk/database"
	"travelrisk/middleware"
	"travelrisk/models"

	"github.com/gin-gonic/gin"
)

// CreateReport files an incident report for the logged-in user. The reporter
// identity comes from the session claims, never from the body.
func (h *Handlers) CreateReport(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil || claims.Username == "" {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Username is required"})
		return
	}

	var req models.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.service.CreateReport(c.Request.Context(), claims.Username, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to save report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Report submitted",
		"report":  report,
	})
}

// ListReports returns all incident reports.
func (h *Handlers) ListReports(c *gin.Context) {
	reports, err := h.service.ListReports(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to fetch reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

// UpdateReport applies a moderation edit to the report embedded in the body.
func (h *Handlers) UpdateReport(c *gin.Context) {
	var req models.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Report ID is required"})
		return
	}

	report, err := h.service.UpdateReport(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to update report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeleteReport removes the report named by the reportId query parameter.
func (h *Handlers) DeleteReport(c *gin.Context) {
	reportID := c.Query("reportId")
	if reportID == "" {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Report ID is required"})
		return
	}

	if err := h.service.DeleteReport(c.Request.Context(), reportID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to delete report"})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Report deleted successfully"})
}
