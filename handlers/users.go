package handlers

import (
	"errors"
	"net/http"

	"travelrisk/database"
	"travelrisk/models"

	"github.com/gin-gonic/gin"
)

// CreateUser handles signup. An off-enum role in the request is stored as a
// regular user; only the "admin" literal grants the admin role.
func (h *Handlers) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.MessageResponse{Message: "Incomplete data"})
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, database.ErrAlreadyExists) {
			c.JSON(http.StatusUnprocessableEntity, models.MessageResponse{Message: "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

// ListUsers returns all accounts for the admin dashboard.
func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser applies an admin edit to the account embedded in the body.
func (h *Handlers) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "User ID is required"})
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes the account named by the userId query parameter.
func (h *Handlers) DeleteUser(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "User ID is required"})
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "User deleted successfully"})
}
